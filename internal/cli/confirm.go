package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"actlog/internal/app"
	"actlog/internal/confirm"

	"github.com/spf13/cobra"
)

// resolve answers a pending confirmation, asking on stdin unless --yes was given. It
// reports whether the action ran.
func resolve(cmd *cobra.Command, root *App, a *app.App, req confirm.Request) (bool, error) {
	if !root.Yes && !askYesNo(cmd, req.Title+" "+req.Text) {
		a.Decline(req.Token)
		return false, nil
	}
	if _, err := a.Confirm(req.Token); err != nil {
		return false, err
	}
	return true, nil
}

func askYesNo(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N]: ", question)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID(arg)
	}
	return id, nil
}
