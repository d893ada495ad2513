package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.BankDataSecret != DefaultBankDataSecret {
		t.Fatalf("expected insecure default secret, got %q", cfg.BankDataSecret)
	}
	if cfg.ACHPadBlocks {
		t.Fatal("block padding must default off")
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		DatabaseURL:    "postgres://localhost/paydispatch",
		Environment:    "development",
		BankDataSecret: DefaultBankDataSecret,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "development with defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing database url",
			mutate:  func(c *Config) { c.DatabaseURL = " " },
			wantErr: true,
		},
		{
			name:    "empty bank data secret",
			mutate:  func(c *Config) { c.BankDataSecret = "" },
			wantErr: true,
		},
		{
			name: "production with default secret",
			mutate: func(c *Config) {
				c.Environment = "production"
				c.JWTSecret = "strong"
			},
			wantErr: true,
		},
		{
			name: "production without jwt secret",
			mutate: func(c *Config) {
				c.Environment = "production"
				c.BankDataSecret = "real-secret"
			},
			wantErr: true,
		},
		{
			name: "production fully configured",
			mutate: func(c *Config) {
				c.Environment = "production"
				c.JWTSecret = "strong"
				c.BankDataSecret = "real-secret"
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ADDR", ":9999")
	t.Setenv("ACH_PAD_BLOCKS", "true")
	t.Setenv("BANK_DATA_SECRET", "override")

	cfg := Load()
	if cfg.Addr != ":9999" {
		t.Fatalf("addr = %q", cfg.Addr)
	}
	if !cfg.ACHPadBlocks {
		t.Fatal("ACH_PAD_BLOCKS=true not applied")
	}
	if cfg.BankDataSecret != "override" {
		t.Fatalf("secret = %q", cfg.BankDataSecret)
	}
}
