package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2"
)

func addSampleCase(t *testing.T, dbPath, name string) string {
	t.Helper()
	out, err := executeCommand(rootCmd, "add", "--db", dbPath,
		"--name", name,
		"--type", "new",
		"--frequency", "4",
		"--impact", "4",
		"--areas", "2",
		"--easy", "4",
		"--quick", "4")
	if err != nil {
		t.Fatalf("add failed: %v\n%s", err, out)
	}
	return extractCaseID(t, out)
}

func TestDeleteCommand(t *testing.T) {
	dbPath := testDB(t)
	id := addSampleCase(t, dbPath, "Doomed case")

	out, err := executeCommand(rootCmd, "delete", id, "--db", dbPath)
	if err != nil {
		t.Fatalf("delete failed: %v\n%s", err, out)
	}

	listOut, _ := executeCommand(rootCmd, "list", "--db", dbPath)
	if strings.Contains(listOut, "Doomed case") {
		t.Errorf("Expected case gone after delete, got %q", listOut)
	}

	if _, err := executeCommand(rootCmd, "delete", id, "--db", dbPath); err == nil {
		t.Error("Expected error deleting a missing case")
	}
}

func TestClearCommand_ForceSkipsPrompt(t *testing.T) {
	dbPath := testDB(t)
	addSampleCase(t, dbPath, "First")
	addSampleCase(t, dbPath, "Second")

	out, err := executeCommand(rootCmd, "clear", "--db", dbPath, "--force")
	if err != nil {
		t.Fatalf("clear failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Deleted 2 test case(s)") {
		t.Errorf("Expected clear confirmation, got %q", out)
	}
}

func TestClearCommand_PromptCancelled(t *testing.T) {
	dbPath := testDB(t)
	addSampleCase(t, dbPath, "Survivor")

	originalAskOne := askOneFunc
	askOneFunc = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		*(response.(*bool)) = false
		return nil
	}
	defer func() { askOneFunc = originalAskOne }()

	out, err := executeCommand(rootCmd, "clear", "--db", dbPath)
	if err != nil {
		t.Fatalf("clear failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "cancelled") {
		t.Errorf("Expected cancellation notice, got %q", out)
	}

	listOut, _ := executeCommand(rootCmd, "list", "--db", dbPath)
	if !strings.Contains(listOut, "Survivor") {
		t.Error("Expected cases kept after cancelled clear")
	}
}

func TestExportCommand_ToFile(t *testing.T) {
	dbPath := testDB(t)
	addSampleCase(t, dbPath, "Exported case")
	target := filepath.Join(t.TempDir(), "project.json")

	out, err := executeCommand(rootCmd, "export", "--db", dbPath, "-o", target)
	if err != nil {
		t.Fatalf("export failed: %v\n%s", err, out)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if doc["projectName"] != "default" {
		t.Errorf("Expected default project name, got %v", doc["projectName"])
	}
	cases, _ := doc["testCases"].([]interface{})
	if len(cases) != 1 {
		t.Errorf("Expected one exported case, got %d", len(cases))
	}
}

func TestExplainCommand_ShowsBreakdown(t *testing.T) {
	dbPath := testDB(t)
	id := addSampleCase(t, dbPath, "Explained case")

	out, err := executeCommand(rootCmd, "explain", id, "--db", dbPath, "--raw")
	if err != nil {
		t.Fatalf("explain failed: %v\n%s", err, out)
	}
	for _, want := range []string{"Risk:", "Value:", "Effort:", "Total:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in breakdown, got %q", want, out)
		}
	}
}

func TestReportCommand_RawMarkdown(t *testing.T) {
	dbPath := testDB(t)
	addSampleCase(t, dbPath, "Reported case")

	out, err := executeCommand(rootCmd, "report", "--db", dbPath, "--raw")
	if err != nil {
		t.Fatalf("report failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "# default") {
		t.Errorf("Expected project heading, got %q", out)
	}
	if !strings.Contains(out, "Reported case") {
		t.Errorf("Expected case in report, got %q", out)
	}
}

func TestBoardCommand_SkipTUIRendersColumns(t *testing.T) {
	dbPath := testDB(t)
	addSampleCase(t, dbPath, "Board case")
	t.Setenv("AUTOCASE_TEST_SKIP_TUI", "1")

	out, err := executeCommand(rootCmd, "board", "--db", dbPath)
	if err != nil {
		t.Fatalf("board failed: %v\n%s", err, out)
	}
	for _, want := range []string{"Automate", "Maybe", "Don't automate", "Board case"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in board view, got %q", want, out)
		}
	}
}

func TestBoardCommand_EmptyProject(t *testing.T) {
	dbPath := testDB(t)

	out, err := executeCommand(rootCmd, "board", "--db", dbPath)
	if err != nil {
		t.Fatalf("board failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No test cases") {
		t.Errorf("Expected empty-project notice, got %q", out)
	}
}

func TestInventoryCommand_FromDiagram(t *testing.T) {
	dbPath := testDB(t)
	file := writeFixture(t, "v1.json", diagramV1)

	out, err := executeCommand(rootCmd, "inventory", "--db", dbPath, "--from", file)
	if err != nil {
		t.Fatalf("inventory failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Inventoried 2 state(s)") {
		t.Errorf("Expected inventory count, got %q", out)
	}
	if !strings.Contains(out, "Dashboard") || !strings.Contains(out, "loop-same") {
		t.Errorf("Expected inventory rows, got %q", out)
	}
}

func TestGenerateCommand_FromStoredVersions(t *testing.T) {
	dbPath := testDB(t)
	v1 := writeFixture(t, "v1.json", diagramV1)
	v2 := writeFixture(t, "v2.json", diagramV2)

	executeCommand(rootCmd, "import", v1, "--db", dbPath)
	executeCommand(rootCmd, "import", v2, "--db", dbPath)
	executeCommand(rootCmd, "clear", "--db", dbPath, "--force")

	out, err := executeCommand(rootCmd, "generate", "--app", "webshop", "--db", dbPath)
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Generated 2 draft case(s)") {
		t.Errorf("Expected regenerated drafts, got %q", out)
	}
}
