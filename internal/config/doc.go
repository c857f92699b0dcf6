// Package config loads the optional .eff.yaml configuration file and
// exposes it as the base layer of option resolution.
//
// # Configuration Precedence
//
// Option values resolve in the following order (highest to lowest
// priority):
//
//  1. Process arguments (--eff-by-issue, --eff-filter, --eff-absolute-paths)
//  2. Environment variables (EFF_NO_GRAY, EFF_EDITOR_SCHEME, EFF_NO_LINK_RULES, EFF_ABSOLUTE_PATHS)
//  3. YAML config file (.eff.yaml in the working directory, else ~/.config/eff/.eff.yaml)
//  4. Built-in defaults (relative paths, linked rules, dimmed secondary text)
//
// This package supplies only the file layer; the layering itself happens
// in the formatter's options adapter.
//
// # Recognized Keys
//
//   - editor_scheme: URL template with {file}, {line} and {column} placeholders
//   - no_link_rules: render bare rule ids instead of documentation links
//   - no_gray: render secondary text plainly instead of dimmed
//   - absolute_paths: render absolute file paths
//   - by_issue: group findings by rule id
//   - filter_rule: restrict the report to one rule id
//   - theme: "default" or "mono"
//
// Setting EFF_DEBUG to any non-empty value traces config resolution on
// stderr.
package config
