package tester

import "testing"

func TestRunFileSpecScenarios(t *testing.T) {
	results, err := RunFile("../testdata/scenarios/spec_scenarios.yaml")
	if err != nil {
		t.Fatalf("RunFile() error = %v", err)
	}
	if len(results) == 0 {
		t.Fatal("no scenarios loaded")
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("%v", r)
		}
	}
}
