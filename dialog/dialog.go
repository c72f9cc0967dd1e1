// Package dialog shows native save/confirm/error dialogs by running
// the platform's dialog tool in a child process.
//
// Driving a separate GUI toolkit from the drawing process is fragile,
// so each dialog runs in its own child process and reports back over
// stdout, the same structure the classic stddraw library uses for its
// Tk dialogs. On macOS the tool is osascript, on Windows PowerShell,
// and on Linux zenity with a kdialog fallback.
package dialog

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoDialogTool is returned when no dialog program is installed.
var ErrNoDialogTool = errors.New("dialog: no dialog tool available")

// SaveFileName asks the user for a file name to save to.
// An empty name with a nil error means the user cancelled.
func SaveFileName() (string, error) {
	argv, err := saveDialogArgv(runtime.GOOS)
	if err != nil {
		return "", err
	}
	out, err := exec.Command(argv[0], argv[1:]...).Output()
	if err != nil {
		// zenity and kdialog exit non-zero on cancel.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", nil
		}
		return "", fmt.Errorf("dialog: save dialog: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Info shows an informational message box.
func Info(title, message string) error {
	return run(infoDialogArgv(runtime.GOOS, title, message))
}

// Error shows an error message box.
func Error(title, message string) error {
	return run(errorDialogArgv(runtime.GOOS, title, message))
}

func run(argv []string, err error) error {
	if err != nil {
		return err
	}
	if out, cerr := exec.Command(argv[0], argv[1:]...).CombinedOutput(); cerr != nil {
		return fmt.Errorf("dialog: %s: %w (%s)", argv[0], cerr, strings.TrimSpace(string(out)))
	}
	return nil
}

// saveDialogArgv builds the child-process command for a file-save
// dialog on the given platform.
func saveDialogArgv(goos string) ([]string, error) {
	switch goos {
	case "darwin":
		return []string{
			"osascript", "-e",
			`POSIX path of (choose file name with prompt "Save drawing as")`,
		}, nil
	case "windows":
		return []string{
			"powershell", "-NoProfile", "-Command",
			`Add-Type -AssemblyName System.Windows.Forms; ` +
				`$d = New-Object System.Windows.Forms.SaveFileDialog; ` +
				`$d.Filter = 'Images|*.png;*.jpg'; ` +
				`if ($d.ShowDialog() -eq 'OK') { Write-Output $d.FileName }`,
		}, nil
	default:
		if _, err := exec.LookPath("zenity"); err == nil {
			return []string{"zenity", "--file-selection", "--save", "--title", "Save drawing as"}, nil
		}
		if _, err := exec.LookPath("kdialog"); err == nil {
			return []string{"kdialog", "--getsavefilename", "."}, nil
		}
		return nil, ErrNoDialogTool
	}
}

// infoDialogArgv builds the child-process command for an info box.
func infoDialogArgv(goos, title, message string) ([]string, error) {
	switch goos {
	case "darwin":
		return []string{
			"osascript", "-e",
			fmt.Sprintf(`display dialog %q with title %q buttons {"OK"} default button "OK"`,
				message, title),
		}, nil
	case "windows":
		return []string{
			"powershell", "-NoProfile", "-Command",
			fmt.Sprintf(`Add-Type -AssemblyName System.Windows.Forms; `+
				`[System.Windows.Forms.MessageBox]::Show(%q, %q) | Out-Null`,
				message, title),
		}, nil
	default:
		if _, err := exec.LookPath("zenity"); err == nil {
			return []string{"zenity", "--info", "--title", title, "--text", message}, nil
		}
		if _, err := exec.LookPath("kdialog"); err == nil {
			return []string{"kdialog", "--title", title, "--msgbox", message}, nil
		}
		return nil, ErrNoDialogTool
	}
}

// errorDialogArgv builds the child-process command for an error box.
func errorDialogArgv(goos, title, message string) ([]string, error) {
	switch goos {
	case "darwin":
		return []string{
			"osascript", "-e",
			fmt.Sprintf(`display dialog %q with title %q buttons {"OK"} default button "OK" with icon stop`,
				message, title),
		}, nil
	case "windows":
		return []string{
			"powershell", "-NoProfile", "-Command",
			fmt.Sprintf(`Add-Type -AssemblyName System.Windows.Forms; `+
				`[System.Windows.Forms.MessageBox]::Show(%q, %q, 'OK', 'Error') | Out-Null`,
				message, title),
		}, nil
	default:
		if _, err := exec.LookPath("zenity"); err == nil {
			return []string{"zenity", "--error", "--title", title, "--text", message}, nil
		}
		if _, err := exec.LookPath("kdialog"); err == nil {
			return []string{"kdialog", "--title", title, "--error", message}, nil
		}
		return nil, ErrNoDialogTool
	}
}
