package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// FormatterFor builds the output formatter selected by the command's flags
func FormatterFor(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// Confirm asks a yes/no question and reports whether the answer was yes
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s (y/N): ", prompt)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
