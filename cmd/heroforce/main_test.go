package main

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("HEROFORCE_TEST_VALUE", "")
	if got := getEnv("HEROFORCE_TEST_VALUE", "fallback"); got != "fallback" {
		t.Fatalf("getEnv with empty variable = %q, want %q", got, "fallback")
	}

	t.Setenv("HEROFORCE_TEST_VALUE", "configured")
	if got := getEnv("HEROFORCE_TEST_VALUE", "fallback"); got != "configured" {
		t.Fatalf("getEnv with set variable = %q, want %q", got, "configured")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("HEROFORCE_TEST_TTL", "")
	if got := getEnvInt("HEROFORCE_TEST_TTL", 24); got != 24 {
		t.Fatalf("getEnvInt with empty variable = %d, want 24", got)
	}

	t.Setenv("HEROFORCE_TEST_TTL", "72")
	if got := getEnvInt("HEROFORCE_TEST_TTL", 24); got != 72 {
		t.Fatalf("getEnvInt with set variable = %d, want 72", got)
	}

	t.Setenv("HEROFORCE_TEST_TTL", "not-a-number")
	if got := getEnvInt("HEROFORCE_TEST_TTL", 24); got != 24 {
		t.Fatalf("getEnvInt with invalid variable = %d, want 24", got)
	}
}
