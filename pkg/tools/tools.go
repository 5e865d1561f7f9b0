// Package tools installs the command-line tools the dotfiles expect.
//
// The registry is a fixed table: each entry names the binary looked up on
// PATH, the package to install and the package manager that installs it.
package tools

// Package managers
const (
	ManagerCargo = "cargo"
	ManagerBrew  = "brew"
)

// Tool describes one installable command-line tool
type Tool struct {
	// Name is the binary looked up on PATH
	Name string `json:"name" yaml:"name"`
	// Package is passed to the package manager
	Package string `json:"package" yaml:"package"`
	// Manager is the package manager command
	Manager string `json:"manager" yaml:"manager"`
	// FailureHint is shown to the user when installation fails
	FailureHint string `json:"failure_hint,omitempty" yaml:"failure_hint,omitempty"`
}

// InstallArgs returns the manager arguments that install the tool
func (t Tool) InstallArgs() []string {
	return []string{"install", t.Package}
}

// DefaultTools returns the tool table in install order
func DefaultTools() []Tool {
	return []Tool{
		{Name: "eza", Package: "eza", Manager: ManagerCargo},
		{Name: "rg", Package: "ripgrep", Manager: ManagerCargo},
		{Name: "fd", Package: "fd-find", Manager: ManagerCargo},
		{
			Name:        "nvim",
			Package:     "nvim",
			Manager:     ManagerBrew,
			FailureHint: "Failed to install nvim with brew. Install it manually.",
		},
	}
}
