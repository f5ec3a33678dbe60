package orderstore

import (
	"testing"
	"time"

	"github.com/yappari/coffeebar-admin/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{OrderStoreAddress: "http://example.com", OrderStoreTimeout: 5 * time.Second}
	client, err := newClient(clientParams{Config: cfg, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client instance")
	}
}

func TestNewClientRejectsBadAddress(t *testing.T) {
	cfg := &config.Config{OrderStoreAddress: "not a url"}
	if _, err := newClient(clientParams{Config: cfg, Logger: testLogger()}); err == nil {
		t.Fatal("expected error for invalid address")
	}
}
