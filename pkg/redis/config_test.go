package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr string
	}{
		{name: "defaults", config: NewRedisConfig()},
		{name: "empty host", config: NewRedisConfig().WithHost(""), wantErr: "host cannot be empty"},
		{name: "port out of range", config: NewRedisConfig().WithPort(70000), wantErr: "invalid port: 70000"},
		{name: "database out of range", config: NewRedisConfig().WithDatabase(16), wantErr: "invalid database: 16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewClient_RejectsInvalidConfig(t *testing.T) {
	_, err := NewClient(NewRedisConfig().WithPort(0))
	assert.ErrorContains(t, err, "invalid Redis configuration")
}

func TestNewClient_DoesNotDial(t *testing.T) {
	client, err := NewClient(NewRedisConfig().WithHost("redis.internal").WithPort(6380).WithDatabase(2))
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, "redis.internal:6380", client.config.Addr())
	assert.NotNil(t, client.GetClient())
}
