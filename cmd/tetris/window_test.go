//go:build !nowindow

package main

import "testing"

func TestWindowCommandRegistered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"window"})
	if err != nil || cmd.Name() != "window" {
		t.Errorf("window command not registered: %v", err)
	}
}
