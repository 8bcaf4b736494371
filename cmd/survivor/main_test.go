package main

import "testing"

func TestVariantArg(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"default", nil, "survival", false},
		{"belt", []string{"survival_belt"}, "survival_belt", false},
		{"unknown", []string{"flappy"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := variantArg(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("variantArg(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("variantArg(%v) = %q, expected %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:22", "22"},
		{"nonsense", "nonsense"},
	}

	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, expected %q", tt.addr, got, tt.want)
		}
	}
}

func TestSetupMemoryStore(t *testing.T) {
	flagLogFile = ""
	flagLogLevel = "warn"

	e, err := setup("memory", false)
	if err != nil {
		t.Fatalf("setup(memory) failed: %v", err)
	}
	defer e.Close()

	if e.store != nil || e.player != nil {
		t.Error("memory setup should not open a database or audio")
	}

	hs := e.highScores("survival")
	if err := hs.CommitHighScore(4.5); err != nil {
		t.Fatalf("CommitHighScore failed: %v", err)
	}
	if best, _ := hs.LoadHighScore(); best != 4.5 {
		t.Errorf("best = %f, expected 4.5", best)
	}
}

func TestSetupSQLiteStore(t *testing.T) {
	flagLogFile = ""
	flagLogLevel = "info"
	flagDBPath = t.TempDir() + "/survivor.db"

	e, err := setup("sqlite", false)
	if err != nil {
		t.Fatalf("setup(sqlite) failed: %v", err)
	}
	defer e.Close()

	if e.store == nil {
		t.Fatal("sqlite setup should open the database")
	}
	deps := e.deps("survival")
	if err := deps.HighScores.CommitHighScore(7); err != nil {
		t.Fatalf("CommitHighScore failed: %v", err)
	}
	if best, err := e.store.BestScore("survival"); err != nil || best != 7 {
		t.Errorf("BestScore() = %f, %v, expected 7", best, err)
	}
}

func TestSetupRejectsUnknownStore(t *testing.T) {
	flagLogLevel = "info"
	if _, err := setup("redis", false); err == nil {
		t.Error("expected error for unknown store kind")
	}
}
