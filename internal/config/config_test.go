package config_test

import (
	"context"
	"testing"

	"github.com/ark-network/countdown/internal/config"
	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const (
	admin    = "0x00000000000000000000000000000000000000a1"
	treasury = "0x00000000000000000000000000000000000000b2"
)

func TestLoadConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		fixtures := []struct {
			name string
			env  map[string]string
		}{
			{
				name: "badger",
				env: map[string]string{
					"COUNTDOWN_ADMIN":    admin,
					"COUNTDOWN_TREASURY": treasury,
				},
			},
			{
				name: "sqlite with overrides",
				env: map[string]string{
					"COUNTDOWN_ADMIN":                admin,
					"COUNTDOWN_TREASURY":             treasury,
					"COUNTDOWN_DB_TYPE":              "sqlite",
					"COUNTDOWN_INITIAL_STAKE_AMOUNT": "1000",
					"COUNTDOWN_INITIAL_END_DELAY":    "10",
					"COUNTDOWN_INITIAL_COOLDOWN":     "0",
					"COUNTDOWN_AUTO_CLAIM_INTERVAL":  "5",
				},
			},
		}

		for _, f := range fixtures {
			t.Run(f.name, func(t *testing.T) {
				cfg := loadConfig(t, f.env)
				require.NoError(t, cfg.Validate())
				require.NotNil(t, cfg.AppService())
				require.NotNil(t, cfg.AdminService())

				require.NoError(t, cfg.AppService().Start())
				info, err := cfg.AppService().GetInfo(context.Background())
				require.NoError(t, err)
				expectedAdmin, err := domain.ParseIdentity(admin)
				require.NoError(t, err)
				require.Equal(t, expectedAdmin, info.Admin)
				cfg.AppService().Stop()
			})
		}

		t.Run("optional values", func(t *testing.T) {
			cfg := loadConfig(t, map[string]string{
				"COUNTDOWN_INITIAL_COOLDOWN": "0",
			})
			require.Nil(t, cfg.InitialEndDelay)
			require.NotNil(t, cfg.InitialCoolDownDuration)
			require.Zero(t, *cfg.InitialCoolDownDuration)
		})
	})

	t.Run("invalid", func(t *testing.T) {
		fixtures := []struct {
			name        string
			env         map[string]string
			expectedErr string
		}{
			{
				name:        "missing admin",
				env:         map[string]string{"COUNTDOWN_TREASURY": treasury},
				expectedErr: "missing admin",
			},
			{
				name: "invalid admin",
				env: map[string]string{
					"COUNTDOWN_ADMIN":    "admin",
					"COUNTDOWN_TREASURY": treasury,
				},
				expectedErr: "invalid admin",
			},
			{
				name:        "missing treasury",
				env:         map[string]string{"COUNTDOWN_ADMIN": admin},
				expectedErr: "missing treasury",
			},
			{
				name: "unsupported db",
				env: map[string]string{
					"COUNTDOWN_ADMIN":    admin,
					"COUNTDOWN_TREASURY": treasury,
					"COUNTDOWN_DB_TYPE":  "postgres",
				},
				expectedErr: "db type not supported",
			},
			{
				name: "unsupported publisher",
				env: map[string]string{
					"COUNTDOWN_ADMIN":                admin,
					"COUNTDOWN_TREASURY":             treasury,
					"COUNTDOWN_EVENT_PUBLISHER_TYPE": "kafka",
				},
				expectedErr: "event publisher type not supported",
			},
			{
				name: "invalid stake",
				env: map[string]string{
					"COUNTDOWN_ADMIN":                admin,
					"COUNTDOWN_TREASURY":             treasury,
					"COUNTDOWN_INITIAL_STAKE_AMOUNT": "-1",
				},
				expectedErr: "invalid initial stake amount",
			},
			{
				name: "negative auto claim interval",
				env: map[string]string{
					"COUNTDOWN_ADMIN":               admin,
					"COUNTDOWN_TREASURY":            treasury,
					"COUNTDOWN_AUTO_CLAIM_INTERVAL": "-1",
				},
				expectedErr: "invalid auto claim interval",
			},
		}

		for _, f := range fixtures {
			t.Run(f.name, func(t *testing.T) {
				cfg := loadConfig(t, f.env)
				err := cfg.Validate()
				require.Error(t, err)
				require.ErrorContains(t, err, f.expectedErr)
			})
		}
	})
}

func loadConfig(t *testing.T, env map[string]string) *config.Config {
	viper.Reset()
	t.Setenv("COUNTDOWN_DATADIR", t.TempDir())
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	return cfg
}
