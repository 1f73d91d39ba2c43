package application_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ark-network/countdown/internal/core/application"
	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/ark-network/countdown/internal/core/ports"
	"github.com/ark-network/countdown/internal/infrastructure/db"
	watermillpublisher "github.com/ark-network/countdown/internal/infrastructure/publisher/watermill"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"
)

var (
	admin    = domain.HexToIdentity("0x00000000000000000000000000000000000000a1")
	treasury = domain.HexToIdentity("0x00000000000000000000000000000000000000b2")
	alice    = domain.HexToIdentity("0x00000000000000000000000000000000000000c3")
	bob      = domain.HexToIdentity("0x00000000000000000000000000000000000000d4")
	carol    = domain.HexToIdentity("0x00000000000000000000000000000000000000e5")
	stake    = domain.DefaultStakeAmount

	startTime = time.Unix(1700000000, 0)
)

type fakeScheduler struct {
	lock     sync.Mutex
	tasks    []func()
	started  bool
	interval int64
}

func (s *fakeScheduler) Start() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.started = true
}

func (s *fakeScheduler) Stop() {}

func (s *fakeScheduler) ScheduleTask(interval int64, _ bool, task func()) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.interval = interval
	s.tasks = append(s.tasks, task)
	return nil
}

func (s *fakeScheduler) runAll() {
	for _, task := range s.tasks {
		task()
	}
}

type testEnv struct {
	svc         application.Service
	admin       application.AdminService
	repoManager ports.RepoManager
	clock       *clock.Mock
	scheduler   *fakeScheduler
}

func newTestEnv(t *testing.T, cfg application.GameConfig) *testEnv {
	repoManager, err := db.NewService(db.ServiceConfig{
		DataStoreType:   "badger",
		DataStoreConfig: []interface{}{"", nil},
	})
	require.NoError(t, err)

	mockClock := clock.NewMock()
	mockClock.Set(startTime)
	scheduler := &fakeScheduler{}

	svc, err := application.NewService(
		cfg, repoManager, watermillpublisher.NewPublisher(), scheduler, mockClock,
	)
	require.NoError(t, err)
	require.NoError(t, svc.Start())
	t.Cleanup(svc.Stop)

	return &testEnv{svc, svc, repoManager, mockClock, scheduler}
}

func defaultConfig() application.GameConfig {
	return application.GameConfig{Admin: admin, Treasury: treasury}
}

func (e *testEnv) balance(t *testing.T, account domain.Identity) string {
	balance, err := e.svc.GetBalance(context.Background(), account)
	require.NoError(t, err)
	return balance.String()
}

func (e *testEnv) custody(t *testing.T) string {
	info, err := e.svc.GetInfo(context.Background())
	require.NoError(t, err)
	return info.CustodyBalance.String()
}

func TestService(t *testing.T) {
	testInitialization(t)

	testScenario(t)

	testParticipate(t)

	testClaimReward(t)

	testAdmin(t)

	testClockJitter(t)

	testAutoClaim(t)

	testNotifications(t)
}

func testInitialization(t *testing.T) {
	t.Run("initialization", func(t *testing.T) {
		t.Run("defaults", func(t *testing.T) {
			env := newTestEnv(t, defaultConfig())

			info, err := env.svc.GetInfo(context.Background())
			require.NoError(t, err)
			require.Equal(t, admin, info.Admin)
			require.Equal(t, treasury, info.Treasury)
			require.Equal(t, "10000000000000000", info.StakeAmount.String())
			require.Equal(t, uint64(69), info.EndDelay)
			require.Equal(t, uint64(300), info.CoolDownDuration)
			require.Zero(t, info.NextStartTime)
			require.False(t, info.HasWinner)
			require.True(t, info.CustodyBalance.IsZero())

			round, err := env.svc.GetRound(context.Background())
			require.NoError(t, err)
			require.Equal(t, domain.DormantStage, round.Stage)
			require.Zero(t, round.Deadline)
		})

		t.Run("overrides", func(t *testing.T) {
			amount := domain.NewAmount(1000)
			delay, cooldown := uint64(10), uint64(20)
			cfg := defaultConfig()
			cfg.StakeAmount = &amount
			cfg.EndDelay = &delay
			cfg.CoolDownDuration = &cooldown
			env := newTestEnv(t, cfg)

			info, err := env.svc.GetInfo(context.Background())
			require.NoError(t, err)
			require.Equal(t, "1000", info.StakeAmount.String())
			require.Equal(t, delay, info.EndDelay)
			require.Equal(t, cooldown, info.CoolDownDuration)
		})

		t.Run("invalid", func(t *testing.T) {
			zero := domain.NewAmount(0)
			fixtures := []struct {
				name        string
				cfg         application.GameConfig
				expectedErr string
			}{
				{"missing_admin", application.GameConfig{Treasury: treasury}, "missing admin"},
				{"missing_treasury", application.GameConfig{Admin: admin}, "missing treasury"},
				{
					"zero_stake",
					application.GameConfig{Admin: admin, Treasury: treasury, StakeAmount: &zero},
					"must be positive",
				},
			}

			for _, f := range fixtures {
				t.Run(f.name, func(t *testing.T) {
					repoManager, err := db.NewService(db.ServiceConfig{
						DataStoreType:   "badger",
						DataStoreConfig: []interface{}{"", nil},
					})
					require.NoError(t, err)
					defer repoManager.Close()

					svc, err := application.NewService(
						f.cfg, repoManager, watermillpublisher.NewPublisher(), nil, clock.NewMock(),
					)
					require.NoError(t, err)
					require.EqualError(t, svc.Start(), f.expectedErr)
				})
			}
		})
	})
}

// testScenario walks through a full round with the default parameters.
func testScenario(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		ctx := context.Background()
		env := newTestEnv(t, defaultConfig())

		_, err := env.svc.Participate(ctx, alice, stake)
		require.NoError(t, err)

		env.clock.Add(10 * time.Second)
		_, err = env.svc.Participate(ctx, bob, stake)
		require.NoError(t, err)

		round, err := env.svc.GetRound(ctx)
		require.NoError(t, err)
		require.Equal(t, bob, round.Leader)
		require.Equal(t, uint64(startTime.Unix()+10), round.DepositTime)
		require.Equal(t, uint64(startTime.Unix()+79), round.Deadline)
		require.Equal(t, domain.OpenStage, round.Stage)
		require.Equal(t, "20000000000000000", env.custody(t))

		env.clock.Add(68 * time.Second)
		info, err := env.svc.GetInfo(ctx)
		require.NoError(t, err)
		require.False(t, info.HasWinner)
		_, err = env.svc.ClaimReward(ctx, carol)
		require.ErrorIs(t, err, domain.ErrNoWinner)

		env.clock.Add(time.Second)
		info, err = env.svc.GetInfo(ctx)
		require.NoError(t, err)
		require.True(t, info.HasWinner)

		payout, err := env.svc.ClaimReward(ctx, carol)
		require.NoError(t, err)
		require.Equal(t, bob, payout.Winner().Account)
		require.Equal(t, "9000000000000000", payout.Winner().Amount.String())
		require.Equal(t, "1000000000000000", payout.Treasury().Amount.String())

		require.Equal(t, "9000000000000000", env.balance(t, bob))
		require.Equal(t, "1000000000000000", env.balance(t, treasury))
		require.Equal(t, "0", env.balance(t, alice))
		require.Equal(t, "0", env.balance(t, carol))
		// Alice's displaced stake stays in custody.
		require.Equal(t, "10000000000000000", env.custody(t))

		info, err = env.svc.GetInfo(ctx)
		require.NoError(t, err)
		require.False(t, info.HasWinner)
		require.Equal(t, uint64(startTime.Unix()+79+300), info.NextStartTime)

		_, err = env.svc.ClaimReward(ctx, carol)
		require.ErrorIs(t, err, domain.ErrNoWinner)

		_, err = env.svc.Participate(ctx, alice, stake)
		require.ErrorIs(t, err, domain.ErrNotReady)

		env.clock.Add(300 * time.Second)
		_, err = env.svc.Participate(ctx, alice, stake)
		require.NoError(t, err)
	})
}

func testParticipate(t *testing.T) {
	t.Run("participate", func(t *testing.T) {
		ctx := context.Background()

		t.Run("valid", func(t *testing.T) {
			env := newTestEnv(t, defaultConfig())

			notification, err := env.svc.Participate(ctx, alice, stake)
			require.NoError(t, err)
			require.NotNil(t, notification)
			require.Equal(t, uint64(1), notification.Seq)
			require.NotEmpty(t, notification.Id)
			require.Equal(t, domain.BidNotification, notification.Type)
			require.Equal(t, alice, notification.Account)
			require.True(t, stake.Equal(notification.Amount))
			require.Equal(t, uint64(startTime.Unix()), notification.Timestamp)
		})

		t.Run("invalid", func(t *testing.T) {
			env := newTestEnv(t, defaultConfig())
			require.NoError(t, env.admin.Ban(ctx, admin, bob))

			fixtures := []struct {
				name        string
				caller      domain.Identity
				value       domain.Amount
				expectedErr error
			}{
				{"blacklisted", bob, stake, domain.ErrForbidden},
				{"blacklisted_wrong_amount", bob, domain.NewAmount(1), domain.ErrForbidden},
				{"wrong_amount", alice, domain.NewAmount(1), domain.ErrInvalidAmount},
				{"zero_amount", alice, domain.NewAmount(0), domain.ErrInvalidAmount},
			}

			for _, f := range fixtures {
				t.Run(f.name, func(t *testing.T) {
					_, err := env.svc.Participate(ctx, f.caller, f.value)
					require.ErrorIs(t, err, f.expectedErr)

					round, err := env.svc.GetRound(ctx)
					require.NoError(t, err)
					require.Equal(t, domain.DormantStage, round.Stage)
					require.Equal(t, "0", env.custody(t))

					notifications, err := env.svc.ListNotifications(ctx, 0, 0)
					require.NoError(t, err)
					require.Empty(t, notifications)
				})
			}
		})

		t.Run("after_settlement", func(t *testing.T) {
			env := newTestEnv(t, defaultConfig())

			_, err := env.svc.Participate(ctx, alice, stake)
			require.NoError(t, err)
			env.clock.Add(100 * time.Second)

			_, err = env.svc.Participate(ctx, bob, stake)
			require.NoError(t, err)

			round, err := env.svc.GetRound(ctx)
			require.NoError(t, err)
			require.Equal(t, bob, round.Leader)
			require.False(t, round.HasWinner)
		})
	})
}

func testClaimReward(t *testing.T) {
	t.Run("claim_reward", func(t *testing.T) {
		ctx := context.Background()

		t.Run("stake_change_before_claim", func(t *testing.T) {
			env := newTestEnv(t, defaultConfig())

			_, err := env.svc.Participate(ctx, alice, stake)
			require.NoError(t, err)
			require.NoError(t, env.admin.SetStakeAmount(ctx, admin, domain.MustAmount("20000000000000000")))

			env.clock.Add(69 * time.Second)
			payout, err := env.svc.ClaimReward(ctx, alice)
			require.NoError(t, err)
			require.True(t, stake.Equal(payout.Stake))
			require.Equal(t, "0", env.custody(t))
			require.Equal(t, "9000000000000000", env.balance(t, alice))
		})

		t.Run("treasury_change_before_claim", func(t *testing.T) {
			env := newTestEnv(t, defaultConfig())

			_, err := env.svc.Participate(ctx, alice, stake)
			require.NoError(t, err)
			require.NoError(t, env.admin.SetTreasury(ctx, admin, carol))

			env.clock.Add(69 * time.Second)
			_, err = env.svc.ClaimReward(ctx, alice)
			require.NoError(t, err)
			require.Equal(t, "1000000000000000", env.balance(t, carol))
			require.Equal(t, "0", env.balance(t, treasury))
		})

		t.Run("winner_claims_own_reward", func(t *testing.T) {
			env := newTestEnv(t, defaultConfig())

			_, err := env.svc.Participate(ctx, alice, stake)
			require.NoError(t, err)
			env.clock.Add(69 * time.Second)

			payout, err := env.svc.ClaimReward(ctx, alice)
			require.NoError(t, err)
			require.Equal(t, alice, payout.Winner().Account)
		})

		t.Run("concurrent_claims", func(t *testing.T) {
			env := newTestEnv(t, defaultConfig())

			_, err := env.svc.Participate(ctx, alice, stake)
			require.NoError(t, err)
			env.clock.Add(69 * time.Second)

			var (
				wg        sync.WaitGroup
				lock      sync.Mutex
				succeeded int
			)
			for i := 0; i < 10; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if _, err := env.svc.ClaimReward(ctx, carol); err == nil {
						lock.Lock()
						succeeded++
						lock.Unlock()
					}
				}()
			}
			wg.Wait()

			require.Equal(t, 1, succeeded)
			require.Equal(t, "9000000000000000", env.balance(t, alice))
			require.Equal(t, "0", env.custody(t))
		})
	})
}

func testAdmin(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		ctx := context.Background()

		t.Run("setters", func(t *testing.T) {
			env := newTestEnv(t, defaultConfig())

			require.NoError(t, env.admin.SetEndDelay(ctx, admin, 5))
			require.NoError(t, env.admin.SetCoolDownDuration(ctx, admin, 7))
			require.NoError(t, env.admin.SetStakeAmount(ctx, admin, domain.NewAmount(42)))
			require.NoError(t, env.admin.SetTreasury(ctx, admin, carol))

			info, err := env.svc.GetInfo(ctx)
			require.NoError(t, err)
			require.Equal(t, uint64(5), info.EndDelay)
			require.Equal(t, uint64(7), info.CoolDownDuration)
			require.Equal(t, "42", info.StakeAmount.String())
			require.Equal(t, carol, info.Treasury)

			// Parameter updates are not notified.
			notifications, err := env.svc.ListNotifications(ctx, 0, 0)
			require.NoError(t, err)
			require.Empty(t, notifications)
		})

		t.Run("unauthorized", func(t *testing.T) {
			env := newTestEnv(t, defaultConfig())
			before, err := env.svc.GetInfo(ctx)
			require.NoError(t, err)

			require.ErrorIs(t, env.admin.SetEndDelay(ctx, alice, 5), domain.ErrUnauthorized)
			require.ErrorIs(t, env.admin.SetCoolDownDuration(ctx, alice, 5), domain.ErrUnauthorized)
			require.ErrorIs(t, env.admin.SetStakeAmount(ctx, alice, domain.NewAmount(5)), domain.ErrUnauthorized)
			require.ErrorIs(t, env.admin.SetTreasury(ctx, alice, alice), domain.ErrUnauthorized)
			require.ErrorIs(t, env.admin.Ban(ctx, alice, bob), domain.ErrUnauthorized)
			require.ErrorIs(t, env.admin.Unban(ctx, alice, bob), domain.ErrUnauthorized)
			_, err = env.admin.ListBlacklisted(ctx, alice)
			require.ErrorIs(t, err, domain.ErrUnauthorized)

			err = env.admin.SetStakeAmount(ctx, admin, domain.NewAmount(0))
			require.ErrorIs(t, err, domain.ErrInvalidAmount)

			after, err := env.svc.GetInfo(ctx)
			require.NoError(t, err)
			require.Equal(t, before, after)
		})

		t.Run("blacklist", func(t *testing.T) {
			env := newTestEnv(t, defaultConfig())

			require.NoError(t, env.admin.Ban(ctx, admin, alice))
			require.NoError(t, env.admin.Ban(ctx, admin, alice))
			list, err := env.admin.ListBlacklisted(ctx, admin)
			require.NoError(t, err)
			require.Equal(t, []domain.Identity{alice}, list)

			_, err = env.svc.Participate(ctx, alice, stake)
			require.ErrorIs(t, err, domain.ErrForbidden)

			require.NoError(t, env.admin.Unban(ctx, admin, alice))
			require.NoError(t, env.admin.Unban(ctx, admin, alice))
			_, err = env.svc.Participate(ctx, alice, stake)
			require.NoError(t, err)

			// A banned leader still gets paid.
			require.NoError(t, env.admin.Ban(ctx, admin, alice))
			env.clock.Add(69 * time.Second)
			_, err = env.svc.ClaimReward(ctx, bob)
			require.NoError(t, err)
			require.Equal(t, "9000000000000000", env.balance(t, alice))
		})
	})
}

func testClockJitter(t *testing.T) {
	t.Run("clock_jitter", func(t *testing.T) {
		ctx := context.Background()
		env := newTestEnv(t, defaultConfig())

		_, err := env.svc.Participate(ctx, alice, stake)
		require.NoError(t, err)
		env.clock.Add(69 * time.Second)

		info, err := env.svc.GetInfo(ctx)
		require.NoError(t, err)
		require.True(t, info.HasWinner)

		env.clock.Add(-30 * time.Second)
		info, err = env.svc.GetInfo(ctx)
		require.NoError(t, err)
		require.True(t, info.HasWinner)
		require.Equal(t, uint64(startTime.Unix()+69), info.Now)

		_, err = env.svc.ClaimReward(ctx, bob)
		require.NoError(t, err)
	})
}

func testAutoClaim(t *testing.T) {
	t.Run("auto_claim", func(t *testing.T) {
		ctx := context.Background()
		cfg := defaultConfig()
		cfg.AutoClaimInterval = 5
		env := newTestEnv(t, cfg)

		require.True(t, env.scheduler.started)
		require.Equal(t, int64(5), env.scheduler.interval)
		require.Len(t, env.scheduler.tasks, 1)

		// Nothing to claim yet.
		env.scheduler.runAll()

		_, err := env.svc.Participate(ctx, alice, stake)
		require.NoError(t, err)
		env.scheduler.runAll()
		require.Equal(t, "0", env.balance(t, alice))

		env.clock.Add(69 * time.Second)
		env.scheduler.runAll()
		require.Equal(t, "9000000000000000", env.balance(t, alice))

		round, err := env.svc.GetRound(ctx)
		require.NoError(t, err)
		require.Equal(t, domain.DormantStage, round.Stage)
	})
}

func testNotifications(t *testing.T) {
	t.Run("notifications", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		env := newTestEnv(t, defaultConfig())

		ch, err := env.svc.GetNotificationsChannel(ctx)
		require.NoError(t, err)

		_, err = env.svc.Participate(ctx, alice, stake)
		require.NoError(t, err)
		env.clock.Add(69 * time.Second)
		_, err = env.svc.ClaimReward(ctx, bob)
		require.NoError(t, err)

		expected := []domain.NotificationType{domain.BidNotification, domain.WinNotification}
		for i, typ := range expected {
			select {
			case n := <-ch:
				require.Equal(t, typ, n.Type)
				require.Equal(t, uint64(i+1), n.Seq)
				require.Equal(t, alice, n.Account)
			case <-time.After(5 * time.Second):
				t.Fatal("timeout waiting for notification")
			}
		}

		stored, err := env.svc.ListNotifications(ctx, 0, 0)
		require.NoError(t, err)
		require.Len(t, stored, 2)
		require.Equal(t, domain.WinNotification, stored[1].Type)
		require.Equal(t, "9000000000000000", stored[1].Amount.String())
		require.Equal(t, treasury, stored[1].Treasury)
		require.Equal(t, "1000000000000000", stored[1].TreasuryAmount.String())
	})
}
