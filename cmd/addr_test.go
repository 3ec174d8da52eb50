package cmd

import (
	"os"
	"testing"
)

func TestValidateAddr(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"loopback with port", "127.0.0.1:8080", false},
		{"localhost with port", "localhost:8080", false},
		{"port only", ":8080", false},
		{"auto-assign port", ":0", false},
		{"missing port", "127.0.0.1", true},
		{"non-numeric port", "127.0.0.1:http", true},
		{"port out of range", "127.0.0.1:70000", true},
		{"host with whitespace", "bad host:8080", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAddr(tt.addr)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAddr(%q) error = %v, wantErr %v", tt.addr, err, tt.wantErr)
			}
		})
	}
}

func TestParseAddr(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"default", []string{"concierge", "serve"}, "127.0.0.1:8080", false},
		{"positional", []string{"concierge", "serve", ":9000"}, ":9000", false},
		{"flag", []string{"concierge", "serve", "--addr", ":9000"}, ":9000", false},
		{"single dash flag", []string{"concierge", "serve", "-addr", ":9000"}, ":9000", false},
		{"invalid positional", []string{"concierge", "serve", "no-port"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			got, err := parseAddr("serve", "127.0.0.1:8080")
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAddr() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseAddr() = %q, want %q", got, tt.want)
			}
		})
	}
}
