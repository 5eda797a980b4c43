package main

import (
	"strings"
	"testing"
)

func TestScenarioCommand_FromFile(t *testing.T) {
	dbPath := testDB(t)
	file := writeFixture(t, "scenario.json", `{
	  "scenarioId": "SCN-42",
	  "scenarioTitle": "Password reset via email",
	  "jiraTicket": "SHOP-1234",
	  "detectedCodeChange": "new",
	  "detectedImplementation": "standard-components",
	  "context": "Reset flow added in sprint 12"
	}`)

	out, err := executeCommand(rootCmd, "scenario", file, "--db", dbPath)
	if err != nil {
		t.Fatalf("scenario failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Password reset via email") {
		t.Errorf("Expected scenario title in output, got %q", out)
	}
	if !strings.Contains(out, "[new]") {
		t.Errorf("Expected parsed change type, got %q", out)
	}

	listOut, err := executeCommand(rootCmd, "list", "--db", dbPath, "--json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(listOut, `"externalScenarioId": "SCN-42"`) {
		t.Errorf("Expected scenario id persisted, got %q", listOut)
	}
	if !strings.Contains(listOut, `"ticket": "SHOP-1234"`) {
		t.Errorf("Expected ticket persisted, got %q", listOut)
	}
}

func TestScenarioCommand_MissingTitle(t *testing.T) {
	dbPath := testDB(t)
	file := writeFixture(t, "scenario.json", `{"scenarioId": "SCN-1"}`)

	_, err := executeCommand(rootCmd, "scenario", file, "--db", dbPath)
	if err == nil || !strings.Contains(err.Error(), "title") {
		t.Errorf("Expected missing-title error, got %v", err)
	}
}
