package main

import (
	"bytes"
	"strings"
	"testing"
)

// These exercise the full pipeline: stdin → detect → parse → build → stdout

func TestRun_RendersReportAndExitsOne(t *testing.T) {
	payload := `[{"filePath":"src/app.js","messages":[
		{"ruleId":"no-unused-vars","severity":2,"message":"'x' is defined but never used.","line":3,"column":5},
		{"ruleId":"semi","severity":1,"message":"Missing semicolon.","line":1,"column":10}
	],"fixableErrorCount":0,"fixableWarningCount":1}]`

	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(payload), &stdout, &stderr)

	if code != 1 {
		t.Errorf("expected exit code 1, got %d (stderr: %s)", code, stderr.String())
	}

	output := stdout.String()
	if !strings.Contains(output, "2 problems (1 error, 1 warning)") {
		t.Errorf("missing summary line; got:\n%s", output)
	}
	if !strings.Contains(output, "Missing semicolon") {
		t.Errorf("missing warning message; got:\n%s", output)
	}

	semiRow := strings.Index(output, "Missing semicolon")
	unusedRow := strings.Index(output, "never used")
	if semiRow < 0 || unusedRow < 0 || semiRow > unusedRow {
		t.Errorf("warning row must precede error row; got:\n%s", output)
	}
}

func TestRun_CleanResultsExitZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader("[]"), &stdout, &stderr)

	if code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "Success!") {
		t.Errorf("missing success line; got:\n%s", stdout.String())
	}
}

func TestRun_WarningsOnlyExitZero(t *testing.T) {
	payload := `[{"filePath":"a.js","messages":[{"ruleId":"semi","severity":1,"message":"Missing semicolon.","line":1,"column":1}]}]`

	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(payload), &stdout, &stderr)

	if code != 0 {
		t.Errorf("expected exit code 0 for warnings only, got %d", code)
	}
	if !strings.Contains(stdout.String(), "1 problem (0 errors, 1 warning)") {
		t.Errorf("missing summary; got:\n%s", stdout.String())
	}
}

func TestRun_FatalMessageExitsOne(t *testing.T) {
	payload := `[{"filePath":"broken.js","messages":[{"severity":1,"fatal":true,"message":"Parsing error: Unexpected token","line":1,"column":1}]}]`

	var stdout, stderr bytes.Buffer
	if code := run(nil, strings.NewReader(payload), &stdout, &stderr); code != 1 {
		t.Errorf("expected exit code 1 for fatal message, got %d", code)
	}
}

func TestRun_FilterDoesNotMaskExitCode(t *testing.T) {
	payload := `[{"filePath":"a.js","messages":[
		{"ruleId":"no-undef","severity":2,"message":"'x' is not defined.","line":1,"column":1},
		{"ruleId":"semi","severity":1,"message":"Missing semicolon.","line":2,"column":1}
	]}]`

	var stdout, stderr bytes.Buffer
	code := run([]string{"--eff-filter=semi"}, strings.NewReader(payload), &stdout, &stderr)

	if code != 1 {
		t.Errorf("expected exit code 1 despite filtered display, got %d", code)
	}
	output := stdout.String()
	if !strings.Contains(output, "1 problem (0 errors, 1 warning)") {
		t.Errorf("filter should narrow the rendered report; got:\n%s", output)
	}
	if strings.Contains(output, "not defined") {
		t.Errorf("filtered rule must not render; got:\n%s", output)
	}
}

func TestRun_EmptyStdinExitsTwo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(""), &stdout, &stderr)

	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "no input") {
		t.Errorf("missing stderr notice; got: %s", stderr.String())
	}
}

func TestRun_UnrecognizedInputExitsTwo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader("3 problems found\n"), &stdout, &stderr)

	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "unrecognized input") {
		t.Errorf("missing stderr notice; got: %s", stderr.String())
	}
}

func TestRun_HostArgumentsAreIgnored(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"src/", "--max-warnings", "10"}, strings.NewReader("[]"), &stdout, &stderr)

	if code != 0 {
		t.Errorf("expected unknown args to be ignored, got exit %d (stderr: %s)", code, stderr.String())
	}
}

func TestRun_VersionFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--version"}, strings.NewReader(""), &stdout, &stderr)

	if code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "eff ") {
		t.Errorf("missing version output; got: %s", stdout.String())
	}
}

func TestRun_HelpFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--help"}, strings.NewReader(""), &stdout, &stderr)

	if code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "Usage:") {
		t.Errorf("missing usage output; got: %s", stdout.String())
	}
}
