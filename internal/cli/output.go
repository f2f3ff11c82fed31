package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/thenoetrevino/fete/internal/models"
	"github.com/thenoetrevino/fete/internal/notify"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			fmt.Println(idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Notify outputs a successful outcome along with the record it concerns.
// Quiet mode prints only the record ID.
func (f *OutputFormatter) Notify(n notify.Notification, data any) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			fmt.Println(idGetter.GetID())
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"message": n.Message,
			"data":    data,
		})
	}

	fmt.Println(notify.Render(n))
	return nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports a failed record operation and returns the error carrying
// the exit code the process should end with
func (f *OutputFormatter) Fail(kind models.Kind, err error) error {
	n := notify.Failed(kind, err)
	if f.JSON {
		_ = f.Error(ErrorCode(err), n.Message)
	} else {
		fmt.Fprintln(os.Stderr, notify.Render(n))
	}
	return WithStatus(ExitCodeFor(err), err)
}

// InitError reports a failure to load configuration or records
func (f *OutputFormatter) InitError(err error) error {
	_ = f.Error("INITIALIZATION_ERROR", err.Error())
	return WithStatus(ExitCodeFor(err), err)
}

// UsageError reports a problem with the command line itself
func (f *OutputFormatter) UsageError(message, suggestion string) error {
	_ = f.ErrorWithSuggestion("USAGE_ERROR", message, suggestion)
	return WithStatus(ExitUsage, fmt.Errorf("%s", message))
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if rec, ok := data.(*models.Record); ok {
		fmt.Println(notify.DetailText(rec))
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}
