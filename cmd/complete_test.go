package cmd

import "testing"

func TestCompletion(t *testing.T) {
	root := Completion(Commands)

	for _, name := range []string{"simulate", "tiers", "topic"} {
		if root.Sub[name] == nil {
			t.Errorf("no completion for subcommand %q", name)
		}
	}
	for _, flag := range []string{"holding", "trials", "seed", "shards", "tiers", "histogram"} {
		if root.Sub["simulate"].Flags[flag] == nil {
			t.Errorf("no completion for flag simulate -%s", flag)
		}
	}
	if root.Flags["config"] == nil || root.Flags["v"] == nil {
		t.Errorf("global flags are not completed: %v", root.Flags)
	}
	if got := root.Sub["topic"].Args.Predict(""); len(got) == 0 {
		t.Errorf("topic arguments are not completed")
	}
}
