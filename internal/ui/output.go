package ui

import "fmt"

// Output helpers - use these for consistent styled output across commands.

// Title prints a styled title/header
func Title(text string) {
	fmt.Println(TitleStyle.Render(text))
}

// Success prints a success message with checkmark
func Success(text string) {
	fmt.Println(SuccessStyle.Render("✓ " + text))
}

// Error prints an error message
func Error(text string) {
	fmt.Println(ErrorStyle.Render("✗ " + text))
}

// Warning prints a warning message
func Warning(text string) {
	fmt.Println(WarningStyle.Render("! " + text))
}

// Dim prints dimmed/secondary text
func Dim(text string) {
	fmt.Println(DimStyle.Render("  " + text))
}

// Bold prints bold text
func Bold(text string) {
	fmt.Println(BoldStyle.Render(text))
}

// Command prints a CLI command
func Command(text string) {
	fmt.Println(CommandStyle.Render(text))
}

// Code prints text styled as code
func Code(text string) {
	fmt.Println(CodeStyle.Render(text))
}

// URL prints a styled URL
func URL(text string) {
	fmt.Println(URLStyle.Render(text))
}

// Line prints an empty line
func Line() {
	fmt.Println()
}
