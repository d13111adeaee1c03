// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// IncomeColor renders income amounts and positive balances.
	IncomeColor = lipgloss.Color("#28A745")
	// ExpenseColor renders expense amounts and negative balances.
	ExpenseColor = lipgloss.Color("#DC3545")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings, e.g. a deactivated category.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	// IncomeStyle formats income amounts.
	IncomeStyle = lipgloss.NewStyle().
			Foreground(IncomeColor)

	// ExpenseStyle formats expense amounts.
	ExpenseStyle = lipgloss.NewStyle().
			Foreground(ExpenseColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// HeaderStyle formats table headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))
)

// AmountStyle picks the income or expense style for an amount by kind
// code: 1 income, 2 expense.
func AmountStyle(kind int) lipgloss.Style {
	if kind == 1 {
		return IncomeStyle
	}
	return ExpenseStyle
}
