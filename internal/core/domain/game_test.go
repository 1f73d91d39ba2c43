package domain_test

import (
	"errors"
	"testing"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/stretchr/testify/require"
)

var (
	admin    = domain.HexToIdentity("0x00000000000000000000000000000000000000a1")
	treasury = domain.HexToIdentity("0x00000000000000000000000000000000000000b2")
	alice    = domain.HexToIdentity("0x00000000000000000000000000000000000000c3")
	bob      = domain.HexToIdentity("0x00000000000000000000000000000000000000d4")
	stake    = domain.DefaultStakeAmount
)

func TestGame(t *testing.T) {
	testNewGame(t)

	testParticipate(t)

	testHasWinner(t)

	testClaimReward(t)

	testAdminSetters(t)
}

func newGame(t *testing.T) *domain.Game {
	game, err := domain.NewGame(admin, domain.DefaultParameters(treasury))
	require.NoError(t, err)
	require.NotNil(t, game)
	return game
}

func testNewGame(t *testing.T) {
	t.Run("new_game", func(t *testing.T) {
		t.Run("valid", func(t *testing.T) {
			game := newGame(t)
			require.Equal(t, admin, game.Admin)
			require.Equal(t, treasury, game.Parameters.Treasury)
			require.Equal(t, "10000000000000000", game.Parameters.StakeAmount.String())
			require.Equal(t, uint64(69), game.Parameters.EndDelay)
			require.Equal(t, uint64(300), game.Parameters.CoolDownDuration)
			require.Zero(t, game.Parameters.NextStartTime)
			require.True(t, game.Round.IsEmpty())
			require.Equal(t, domain.DormantStage, game.Stage(0))
			require.Empty(t, game.Changes)
		})

		t.Run("invalid", func(t *testing.T) {
			params := domain.DefaultParameters(treasury)
			params.StakeAmount = domain.NewAmount(0)

			fixtures := []struct {
				admin       domain.Identity
				params      domain.Parameters
				expectedErr string
			}{
				{
					admin:       domain.ZeroIdentity,
					params:      domain.DefaultParameters(treasury),
					expectedErr: "missing admin",
				},
				{
					admin:       admin,
					params:      params,
					expectedErr: "must be positive",
				},
			}

			for _, f := range fixtures {
				game, err := domain.NewGame(f.admin, f.params)
				require.EqualError(t, err, f.expectedErr)
				require.Nil(t, game)
			}
		})
	})
}

func testParticipate(t *testing.T) {
	t.Run("participate", func(t *testing.T) {
		t.Run("valid", func(t *testing.T) {
			game := newGame(t)

			events, err := game.Participate(alice, stake, false, 1000)
			require.NoError(t, err)
			require.Len(t, events, 1)
			event, ok := events[0].(domain.BidPlaced)
			require.True(t, ok)
			require.Equal(t, alice, event.Bidder)
			require.True(t, stake.Equal(event.Amount))
			require.Equal(t, uint64(1000), event.Timestamp)

			require.Equal(t, alice, game.Round.Leader)
			require.Equal(t, uint64(1000), game.Round.DepositTime)
			require.Equal(t, domain.OpenStage, game.Stage(1000))

			// A later deposit fully replaces the leader.
			_, err = game.Participate(bob, stake, false, 1010)
			require.NoError(t, err)
			require.Equal(t, bob, game.Round.Leader)
			require.Equal(t, uint64(1010), game.Round.DepositTime)
			require.Len(t, game.Changes, 2)
		})

		t.Run("settled_round_accepts_deposit", func(t *testing.T) {
			game := newGame(t)
			_, err := game.Participate(alice, stake, false, 1000)
			require.NoError(t, err)
			require.True(t, game.HasWinner(1069))

			_, err = game.Participate(bob, stake, false, 1100)
			require.NoError(t, err)
			require.Equal(t, bob, game.Round.Leader)
			require.False(t, game.HasWinner(1100))
		})

		t.Run("invalid", func(t *testing.T) {
			fixtures := []struct {
				name        string
				value       domain.Amount
				banned      bool
				nextStart   uint64
				now         uint64
				expectedErr error
				expectedMsg string
			}{
				{
					name:        "blacklisted",
					value:       stake,
					banned:      true,
					now:         1000,
					expectedErr: domain.ErrForbidden,
					expectedMsg: "Player is backlisted",
				},
				{
					name:        "blacklisted_before_cooldown",
					value:       domain.NewAmount(1),
					banned:      true,
					nextStart:   2000,
					now:         1000,
					expectedErr: domain.ErrForbidden,
					expectedMsg: "Player is backlisted",
				},
				{
					name:        "cooldown",
					value:       stake,
					nextStart:   2000,
					now:         1999,
					expectedErr: domain.ErrNotReady,
					expectedMsg: "CoolDown period not met",
				},
				{
					name:        "cooldown_before_amount",
					value:       domain.NewAmount(1),
					nextStart:   2000,
					now:         1000,
					expectedErr: domain.ErrNotReady,
					expectedMsg: "CoolDown period not met",
				},
				{
					name:        "wrong_amount",
					value:       domain.NewAmount(1),
					now:         1000,
					expectedErr: domain.ErrInvalidAmount,
					expectedMsg: "amount must be equal to bidAmount",
				},
				{
					name:        "zero_amount",
					value:       domain.NewAmount(0),
					now:         1000,
					expectedErr: domain.ErrInvalidAmount,
					expectedMsg: "amount must be equal to bidAmount",
				},
			}

			for _, f := range fixtures {
				t.Run(f.name, func(t *testing.T) {
					game := newGame(t)
					game.Parameters.NextStartTime = f.nextStart

					events, err := game.Participate(alice, f.value, f.banned, f.now)
					require.Error(t, err)
					require.True(t, errors.Is(err, f.expectedErr))
					require.EqualError(t, err, f.expectedMsg)
					require.Empty(t, events)
					require.True(t, game.Round.IsEmpty())
					require.Empty(t, game.Changes)
				})
			}
		})

		t.Run("cooldown_boundary", func(t *testing.T) {
			game := newGame(t)
			game.Parameters.NextStartTime = 2000

			_, err := game.Participate(alice, stake, false, 2000)
			require.NoError(t, err)
		})
	})
}

func testHasWinner(t *testing.T) {
	t.Run("has_winner", func(t *testing.T) {
		game := newGame(t)
		require.False(t, game.HasWinner(0))
		require.False(t, game.HasWinner(^uint64(0)))

		_, err := game.Participate(alice, stake, false, 1000)
		require.NoError(t, err)

		fixtures := []struct {
			now      uint64
			expected bool
		}{
			{1000, false},
			{1068, false},
			{1069, true},
			{5000, true},
		}
		for _, f := range fixtures {
			require.Equal(t, f.expected, game.HasWinner(f.now))
		}

		// Oversized end delay never settles.
		game.Parameters.EndDelay = ^uint64(0)
		require.False(t, game.HasWinner(^uint64(0)-1))
	})
}

func testClaimReward(t *testing.T) {
	t.Run("claim_reward", func(t *testing.T) {
		t.Run("valid", func(t *testing.T) {
			game := newGame(t)
			_, err := game.Participate(alice, stake, false, 1000)
			require.NoError(t, err)

			payout, events, err := game.ClaimReward(1069)
			require.NoError(t, err)
			require.NotNil(t, payout)
			require.Len(t, events, 1)

			require.Equal(t, alice, payout.Winner().Account)
			require.Equal(t, "9000000000000000", payout.Winner().Amount.String())
			require.Equal(t, treasury, payout.Treasury().Account)
			require.Equal(t, "1000000000000000", payout.Treasury().Amount.String())

			event, ok := events[0].(domain.RewardClaimed)
			require.True(t, ok)
			require.Equal(t, alice, event.Winner)
			require.True(t, payout.Winner().Amount.Equal(event.Amount))
			require.True(t, payout.Treasury().Amount.Equal(event.TreasuryAmount))

			require.True(t, game.Round.IsEmpty())
			require.Equal(t, uint64(1369), game.Parameters.NextStartTime)
			require.False(t, game.HasWinner(1069))

			_, _, err = game.ClaimReward(1069)
			require.ErrorIs(t, err, domain.ErrNoWinner)
		})

		t.Run("next_start_time_never_decreases", func(t *testing.T) {
			game := newGame(t)
			game.Parameters.NextStartTime = 100000
			game.Parameters.CoolDownDuration = 0
			game.Round = domain.Round{Leader: alice, DepositTime: 1, Stake: stake}

			_, _, err := game.ClaimReward(70)
			require.NoError(t, err)
			require.Equal(t, uint64(100000), game.Parameters.NextStartTime)
		})

		t.Run("payout_uses_deposited_stake", func(t *testing.T) {
			game := newGame(t)
			_, err := game.Participate(alice, stake, false, 1000)
			require.NoError(t, err)

			_, err = game.SetStakeAmount(admin, domain.NewAmount(1_000_000))
			require.NoError(t, err)

			payout, _, err := game.ClaimReward(2000)
			require.NoError(t, err)
			tot, err := payout.TotAmount()
			require.NoError(t, err)
			require.True(t, stake.Equal(tot))
		})

		t.Run("rounding_goes_to_treasury", func(t *testing.T) {
			game := newGame(t)
			game.Round = domain.Round{Leader: alice, DepositTime: 1, Stake: domain.NewAmount(99)}

			payout, _, err := game.ClaimReward(1000)
			require.NoError(t, err)
			require.Equal(t, "89", payout.Winner().Amount.String())
			require.Equal(t, "10", payout.Treasury().Amount.String())
		})

		t.Run("invalid", func(t *testing.T) {
			fixtures := []struct {
				name  string
				round domain.Round
				now   uint64
			}{
				{"dormant", domain.Round{}, 1000},
				{"open", domain.Round{Leader: alice, DepositTime: 1000, Stake: stake}, 1068},
			}

			for _, f := range fixtures {
				t.Run(f.name, func(t *testing.T) {
					game := newGame(t)
					game.Round = f.round

					payout, events, err := game.ClaimReward(f.now)
					require.ErrorIs(t, err, domain.ErrNoWinner)
					require.EqualError(t, err, "no winner yet")
					require.Nil(t, payout)
					require.Empty(t, events)
					require.Equal(t, f.round, game.Round)
				})
			}
		})
	})
}

func testAdminSetters(t *testing.T) {
	t.Run("admin_setters", func(t *testing.T) {
		t.Run("valid", func(t *testing.T) {
			game := newGame(t)

			_, err := game.SetEndDelay(admin, 10)
			require.NoError(t, err)
			_, err = game.SetCoolDownDuration(admin, 20)
			require.NoError(t, err)
			_, err = game.SetStakeAmount(admin, domain.NewAmount(30))
			require.NoError(t, err)
			_, err = game.SetTreasury(admin, bob)
			require.NoError(t, err)

			require.Equal(t, uint64(10), game.Parameters.EndDelay)
			require.Equal(t, uint64(20), game.Parameters.CoolDownDuration)
			require.Equal(t, "30", game.Parameters.StakeAmount.String())
			require.Equal(t, bob, game.Parameters.Treasury)
			require.Len(t, game.Changes, 4)
		})

		t.Run("invalid", func(t *testing.T) {
			game := newGame(t)
			before := game.Parameters

			_, err := game.SetEndDelay(alice, 10)
			require.ErrorIs(t, err, domain.ErrUnauthorized)
			_, err = game.SetCoolDownDuration(alice, 10)
			require.ErrorIs(t, err, domain.ErrUnauthorized)
			_, err = game.SetStakeAmount(alice, domain.NewAmount(10))
			require.ErrorIs(t, err, domain.ErrUnauthorized)
			_, err = game.SetTreasury(alice, bob)
			require.ErrorIs(t, err, domain.ErrUnauthorized)
			require.EqualError(t, game.Authorize(alice), "Caller is not an admin")

			_, err = game.SetStakeAmount(admin, domain.NewAmount(0))
			require.ErrorIs(t, err, domain.ErrInvalidAmount)
			require.EqualError(t, err, "must be positive")

			require.Equal(t, before, game.Parameters)
			require.Empty(t, game.Changes)
		})
	})
}
