package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId":      "",
			"kafkaBrokers": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"payment": map[string]any{
			"secretKey": "",
		},
		"auth": map[string]any{
			"accessTokenTTL": "1h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PUBSUB_KAFKABROKERS", want: "pubsub.kafkaBrokers"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "PAYMENT_SECRETKEY", want: "payment.secretKey"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{Redis: &RedisConfig{Addr: "localhost:6379"}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 5*time.Second, cfg.Store.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Payment.Timeout)
	assert.Equal(t, "usd", cfg.Payment.Currency)
	assert.Equal(t, []string{"card"}, cfg.Payment.MethodTypes)
	assert.Equal(t, 30*time.Second, cfg.Redis.LockTTL)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{AccessTokenTTL: 24 * time.Hour},
		Store:   &StoreConfig{Timeout: time.Second},
		Payment: &PaymentConfig{Currency: "bdt", MethodTypes: []string{"card", "link"}, Timeout: 3 * time.Second},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, time.Second, cfg.Store.Timeout)
	assert.Equal(t, "bdt", cfg.Payment.Currency)
	assert.Equal(t, []string{"card", "link"}, cfg.Payment.MethodTypes)
	assert.Equal(t, 3*time.Second, cfg.Payment.Timeout)
	assert.Nil(t, cfg.Redis)
}

func TestReplicasFromEnv(t *testing.T) {
	vars := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		// index 2 has no port, so index 3 is never read
		"POSTGRES_REPLICAS_2_HOST": "replica-c",
		"POSTGRES_REPLICAS_3_HOST": "replica-d",
		"POSTGRES_REPLICAS_3_PORT": "5434",
	}

	replicas := replicasFromEnv(func(key string) string { return vars[key] })

	assert.Len(t, replicas, 2)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
	assert.Equal(t, "5433", replicas[1].Port)
	assert.Empty(t, replicas[1].Password)
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := "env:\n  serviceName: resale\nhttp:\n  port: 8080\nstore:\n  timeout: 2s\n"
	if err := os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlBody), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("test")

	assert.NoError(t, err)
	assert.Equal(t, "resale", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 2*time.Second, cfg.Store.Timeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent", "config")

	assert.Error(t, err)
}
