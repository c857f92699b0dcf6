package main

import "fmt"

func main() {
	// --- General Info ---
	fmt.Println("--- eff Terminal Capability Test ---")
	fmt.Println("Note: If you see raw escape codes (like '[1m'), your terminal might not be interpreting them.")
	fmt.Println("Reports look best in a 256-color terminal (e.g., TERM=xterm-256color).")
	fmt.Println()

	// --- Styles used by the report ---
	fmt.Println("--- Styles Used by the Report ---")
	fmt.Println("\033[1mThis should be BOLD (summary lines).\033[0m (Normal)")
	fmt.Println("\033[4mThis should be UNDERLINED (rule and file links).\033[0m (Normal)")
	fmt.Println("\033[4;38;5;242mThis should be GRAY + UNDERLINED (links unless no_gray).\033[0m (Normal)")
	fmt.Println()

	// --- Report palette (256-color) ---
	fmt.Println("--- Report Palette (256-color) ---")
	fmt.Println("\033[38;5;196mColor 196: errors and the problem line when errors are present.\033[0m")
	fmt.Println("\033[38;5;220mColor 220: warnings and the problem line when only warnings remain.\033[0m")
	fmt.Println("\033[38;5;34mColor 34: success and fixed-file lines.\033[0m")
	fmt.Println("\033[38;5;242mColor 242: subtle locations and links.\033[0m")
	fmt.Println()

	// --- Report glyphs ---
	fmt.Println("--- Report Glyphs ---")
	fmt.Println("Default icons: ✘ (error)  ⚠ (warning)  ✔ (success)  🔨 (fixable)")
	fmt.Println("Mono icons:    x (error)  ! (warning)  + (success)  * (fixable)")
	fmt.Println()

	// --- Caret alignment ---
	fmt.Println("--- Caret Alignment ---")
	fmt.Println("The caret below each source line must land under the reported column.")
	fmt.Println("Plain:     const answer = 42;")
	fmt.Println("           ^")
	fmt.Println("Tab:       \tif (x) { return; }")
	fmt.Println("           \t^")
	fmt.Println("Wide runes (e.g., Japanese) occupy two columns:")
	fmt.Println("           const こんにちは = 1;")
	fmt.Println("           ^")
	fmt.Println()

	// --- iTerm2 CurrentDir hint ---
	fmt.Println("--- iTerm2 CurrentDir Hint (OSC 50) ---")
	fmt.Println("The next line emits the sequence eff prefixes to interactive reports.")
	fmt.Println("iTerm2 uses it to resolve relative paths; other terminals ignore it silently.")
	fmt.Print("\033]50;CurrentDir=/tmp\a")
	fmt.Println("(sequence emitted)")
	fmt.Println()

	fmt.Println("--- Test Complete ---")
}
