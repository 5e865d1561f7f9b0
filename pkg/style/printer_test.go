// pkg/style/printer_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test plain-text rendering of printer output

package style_test

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/arthur-debert/dotfiles/pkg/style"
	"github.com/stretchr/testify/assert"
)

func newPrinter() (*style.Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return style.NewPrinter(&out, &errOut, false), &out, &errOut
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, style.ColorEnabled(&buf, false), "buffers are never terminals")
	assert.False(t, style.ColorEnabled(os.Stdout, true), "flag disables colour")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, style.ColorEnabled(os.Stdout, false))
}

func TestPrinter_SeverityLines(t *testing.T) {
	p, out, errOut := newPrinter()
	assert.False(t, p.ColorEnabled())

	p.Info("linked %d files", 3)
	p.Success("done")
	p.Warning("skipped %s", ".b")
	p.Error(fmt.Errorf("boom"))

	assert.Equal(t, "INFO: linked 3 files\nSUCCESS: done\n", out.String())
	assert.Equal(t, "WARNING: skipped .b\nERROR: boom\n", errOut.String())
}

func TestPrinter_Item(t *testing.T) {
	p, out, _ := newPrinter()

	p.Item(style.KindChanged, "~/.zshrc", "created")
	p.Item(style.KindUnchanged, "~/.vimrc", "")
	p.Item(style.KindWarning, "~/.gitconfig", "backed up")
	p.Item(style.KindFailed, "nvim", "failed")

	assert.Equal(t,
		"  ✓ ~/.zshrc created\n"+
			"  • ~/.vimrc\n"+
			"  ! ~/.gitconfig backed up\n"+
			"  ✗ nvim failed\n",
		out.String())
}

func TestPrinter_Heading(t *testing.T) {
	p, out, _ := newPrinter()
	p.Heading("Symlinks")
	p.Println("plain")
	assert.Equal(t, "Symlinks\nplain\n", out.String())
}
