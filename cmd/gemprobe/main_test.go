package main

import "testing"

func TestHelp(t *testing.T) {
	if code := run([]string{"-h"}); code != 0 {
		t.Fatalf("expected help to return 0, got %d", code)
	}
}

func TestUnknownSubcommand(t *testing.T) {
	if code := run([]string{"unknown"}); code != 2 {
		t.Fatalf("expected 2 for unknown subcommand, got %d", code)
	}
}

func TestVersion(t *testing.T) {
	if code := run([]string{"version"}); code != 0 {
		t.Fatalf("expected version to return 0, got %d", code)
	}
}

func TestNoArgsRunsProbe(t *testing.T) {
	fake := &fakeGenerator{responses: []string{"a", "b", "c"}}
	installFakeGenerator(t, fake)

	t.Setenv("GEMINI_API_KEY", "abc123")
	t.Setenv("GEMINI_MODEL", "")

	// The default .env lookup is relative to the working directory; the test
	// package directory has none, so the environment alone drives config.
	if code := run(nil); code != 0 {
		t.Fatalf("bare invocation should run the probe suite, got %d", code)
	}
	if fake.calls != 3 {
		t.Fatalf("expected 3 probe calls, got %d", fake.calls)
	}
}
