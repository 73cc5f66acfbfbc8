package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptUI answers from fixed scripts and records every notification.
// Once draws run out it stands; once aces run out it answers 1.
type scriptUI struct {
	aces    []int
	draws   []bool
	drawErr error

	aceAsks  int
	drawAsks int
	received []string // "player:AS"
	scores   []string // "dealer=7"
	outcomes []Outcome
	diags    []error
}

func (s *scriptUI) AskAceValue(player string, c Card) (int, error) {
	s.aceAsks++
	if len(s.aces) == 0 {
		return 1, nil
	}
	v := s.aces[0]
	s.aces = s.aces[1:]
	return v, nil
}

func (s *scriptUI) AskDrawOrStand(player string) (bool, error) {
	s.drawAsks++
	if s.drawErr != nil {
		return false, s.drawErr
	}
	if len(s.draws) == 0 {
		return false, nil
	}
	d := s.draws[0]
	s.draws = s.draws[1:]
	return d, nil
}

func (s *scriptUI) CardReceived(player string, c Card) {
	s.received = append(s.received, player+":"+c.String())
}

func (s *scriptUI) Score(player string, score int) {
	s.scores = append(s.scores, fmt.Sprintf("%s=%d", player, score))
}

func (s *scriptUI) RoundOutcome(o Outcome) { s.outcomes = append(s.outcomes, o) }
func (s *scriptUI) Diagnostic(err error)   { s.diags = append(s.diags, err) }

func mustCards(t *testing.T, lits ...string) []Card {
	t.Helper()
	out := make([]Card, 0, len(lits))
	for _, l := range lits {
		c, err := ParseCard(l)
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

// dealOrder builds a deck that hands out the literals first to last.
func dealOrder(t *testing.T, lits ...string) *Deck {
	t.Helper()
	cards := mustCards(t, lits...)
	for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
		cards[i], cards[j] = cards[j], cards[i]
	}
	return NewStackedDeck(cards...)
}

func TestNewRound_TwoEmptyPlayers(t *testing.T) {
	rd := NewRound(dealOrder(t, "2C"), &scriptUI{})

	players := rd.Players()
	require.Len(t, players, 2)
	assert.Equal(t, DealerName, players[0].Name())
	assert.Equal(t, PlayerName, players[1].Name())
	for _, p := range players {
		assert.Empty(t, p.Cards())
		assert.Equal(t, 0, p.Score())
	}
	assert.Equal(t, PhaseDealing, rd.Phase())
	assert.Equal(t, OutcomeNone, rd.Outcome())
	assert.False(t, rd.Standing())
}

func TestStart_DealsDealerThenPlayerTwice(t *testing.T) {
	ui := &scriptUI{}
	rd := NewRound(dealOrder(t, "9C", "2H", "3D", "KS"), ui)
	require.NoError(t, rd.Start())

	assert.Equal(t, []string{"dealer:9C", "player:2H", "player:3D"}, ui.received)
	assert.Equal(t, 9, rd.DealerScore())
	assert.Equal(t, 5, rd.PlayerScore())
	assert.Equal(t, PhasePlayerTurn, rd.Phase())
	assert.Equal(t, 1, rd.Deck().Size())
	assert.ErrorIs(t, rd.Start(), ErrStarted)
}

func TestPlay_PlayerBlackjack(t *testing.T) {
	ui := &scriptUI{aces: []int{11}}
	rd := NewRound(dealOrder(t, "9C", "TS", "AH", "5D", "5C"), ui)

	outcome, err := rd.Play()
	require.NoError(t, err)
	assert.Equal(t, OutcomePlayerBlackjack, outcome)
	assert.Equal(t, 21, rd.PlayerScore())
	assert.Equal(t, 1, ui.aceAsks)
	// no further dealing and no decision asked
	assert.Equal(t, 0, ui.drawAsks)
	assert.Equal(t, 2, rd.Deck().Size())
	dealer, err := rd.Player(DealerName)
	require.NoError(t, err)
	assert.Len(t, dealer.Cards(), 1)
	assert.Equal(t, []Outcome{OutcomePlayerBlackjack}, ui.outcomes)
	assert.ErrorIs(t, rd.Step(), ErrRoundOver)
}

func TestPlay_AceAsOneIsNoBlackjack(t *testing.T) {
	ui := &scriptUI{aces: []int{1}}
	rd := NewRound(dealOrder(t, "9C", "TS", "AH"), ui)
	require.NoError(t, rd.Start())
	assert.Equal(t, 11, rd.PlayerScore())
	assert.Equal(t, PhasePlayerTurn, rd.Phase())
}

func TestPlay_DealerBust(t *testing.T) {
	ui := &scriptUI{draws: []bool{false}}
	// dealer 6, player 18 stands, dealer 16 then 22
	rd := NewRound(dealOrder(t, "6C", "TS", "8H", "TD", "6H", "2C"), ui)

	outcome, err := rd.Play()
	require.NoError(t, err)
	assert.Equal(t, OutcomeDealerBust, outcome)
	assert.Equal(t, 22, rd.DealerScore())
	assert.Equal(t, 18, rd.PlayerScore())
	assert.Equal(t, 1, ui.drawAsks, "standing is sticky")
	assert.True(t, rd.Standing())
	assert.Equal(t, 1, rd.Deck().Size())
}

func TestPlay_PlayerBustDealerDoesNotAct(t *testing.T) {
	ui := &scriptUI{draws: []bool{true}}
	rd := NewRound(dealOrder(t, "9C", "TS", "8H", "5D", "2C"), ui)

	outcome, err := rd.Play()
	require.NoError(t, err)
	assert.Equal(t, OutcomePlayerBust, outcome)
	assert.Equal(t, 23, rd.PlayerScore())
	assert.Equal(t, 9, rd.DealerScore())
	dealer, _ := rd.Player(DealerName)
	assert.Len(t, dealer.Cards(), 1)
	assert.Equal(t, 1, rd.Deck().Size())
}

func TestPlay_StandOff(t *testing.T) {
	ui := &scriptUI{draws: []bool{false}}
	// player stands on 17, dealer 7 draws a ten and holds 17
	rd := NewRound(dealOrder(t, "7C", "TS", "7H", "TD", "2C"), ui)

	outcome, err := rd.Play()
	require.NoError(t, err)
	assert.Equal(t, OutcomeStandOff, outcome)
	assert.Equal(t, 17, rd.DealerScore())
	assert.Equal(t, 17, rd.PlayerScore())
	assert.Equal(t, 1, rd.Deck().Size())
}

func TestStep_DealerActsEvenWhilePlayerDraws(t *testing.T) {
	ui := &scriptUI{draws: []bool{true}}
	rd := NewRound(dealOrder(t, "2C", "3S", "4H", "5D", "6C"), ui)
	require.NoError(t, rd.Start())

	require.NoError(t, rd.Step())
	assert.Equal(t, 12, rd.PlayerScore())
	assert.Equal(t, 8, rd.DealerScore())
	assert.False(t, rd.Over())
	// scores are reported at the top of every tick
	assert.Contains(t, ui.scores, "dealer=2")
	assert.Contains(t, ui.scores, "player=7")
}

func TestStep_DealerHoldsWhileAheadOfDrawingPlayer(t *testing.T) {
	ui := &scriptUI{draws: []bool{true, true}}
	rd := NewRound(dealOrder(t, "KC", "2S", "3H", "4C", "QD", "9D", "2D"), ui)
	require.NoError(t, rd.Start())

	require.NoError(t, rd.Step()) // player 5+4, dealer 10 < 17 draws Q
	assert.Equal(t, 9, rd.PlayerScore())
	assert.Equal(t, 20, rd.DealerScore())

	require.NoError(t, rd.Step()) // player 9+9, dealer holds on 20
	assert.Equal(t, 18, rd.PlayerScore())
	assert.Equal(t, 20, rd.DealerScore())
	assert.False(t, rd.Over(), "player has not stood yet")
	assert.Equal(t, 1, rd.Deck().Size())
}

func TestAce_AskedOnceAndNeverRevisited(t *testing.T) {
	ui := &scriptUI{aces: []int{11}, draws: []bool{true}}
	// player 5 + A(11) = 16, then 9 -> 25 even though A as 1 would be 15
	rd := NewRound(dealOrder(t, "2C", "5H", "AS", "9D"), ui)

	outcome, err := rd.Play()
	require.NoError(t, err)
	assert.Equal(t, OutcomePlayerBust, outcome)
	assert.Equal(t, 25, rd.PlayerScore())
	assert.Equal(t, 1, ui.aceAsks)
}

func TestAce_DealerAcesAreAskedToo(t *testing.T) {
	ui := &scriptUI{aces: []int{11}}
	rd := NewRound(dealOrder(t, "AC", "2S", "3H"), ui)
	require.NoError(t, rd.Start())
	assert.Equal(t, 11, rd.DealerScore())
	assert.Equal(t, 1, ui.aceAsks)
}

func TestAce_AnyIntegerIsStored(t *testing.T) {
	ui := &scriptUI{aces: []int{7}}
	rd := NewRound(dealOrder(t, "AD"), ui)
	require.NoError(t, rd.DealCard(PlayerName))
	assert.Equal(t, 7, rd.PlayerScore())
}

func TestDealCard_EmptyDeck(t *testing.T) {
	ui := &scriptUI{}
	rd := NewRound(NewStackedDeck(), ui)

	err := rd.DealCard(PlayerName)
	assert.ErrorIs(t, err, ErrEmptyDeck)
	require.Len(t, ui.diags, 1)
	assert.ErrorIs(t, ui.diags[0], ErrEmptyDeck)
	for _, p := range rd.Players() {
		assert.Empty(t, p.Cards())
		assert.Equal(t, 0, p.Score())
	}
	assert.Empty(t, ui.received)
}

func TestDealCard_UnknownPlayer(t *testing.T) {
	ui := &scriptUI{}
	rd := NewRound(dealOrder(t, "2C", "3C"), ui)

	err := rd.DealCard("bob")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
	require.Len(t, ui.diags, 1)
	assert.Equal(t, 2, rd.Deck().Size(), "no card consumed")
	assert.Empty(t, ui.received)

	_, err = rd.Player("bob")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestPlay_DealerOutOfCardsEndsInStandOff(t *testing.T) {
	ui := &scriptUI{draws: []bool{false}}
	rd := NewRound(dealOrder(t, "7C", "TS", "8H"), ui)

	outcome, err := rd.Play()
	require.NoError(t, err)
	assert.Equal(t, OutcomeStandOff, outcome)
	require.Len(t, ui.diags, 1)
	assert.ErrorIs(t, ui.diags[0], ErrEmptyDeck)
	assert.Equal(t, 7, rd.DealerScore())
}

func TestPlay_DrawOnEmptyDeckContinues(t *testing.T) {
	ui := &scriptUI{draws: []bool{true, false}}
	rd := NewRound(dealOrder(t, "9C", "TS", "8H"), ui)

	require.NoError(t, rd.Start())
	require.NoError(t, rd.Step())
	assert.Equal(t, 18, rd.PlayerScore())
	assert.Equal(t, 9, rd.DealerScore())
	assert.Len(t, ui.diags, 2) // player's and dealer's draws both came up empty
	assert.False(t, rd.Over())

	require.NoError(t, rd.Step())
	assert.Equal(t, OutcomeStandOff, rd.Outcome())
	assert.Len(t, ui.diags, 3)
}

func TestPlay_AbortOnBoundaryError(t *testing.T) {
	ui := &scriptUI{drawErr: io.EOF}
	rd := NewRound(dealOrder(t, "9C", "TS", "8H", "5D"), ui)

	outcome, err := rd.Play()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAborted))
	assert.True(t, errors.Is(err, io.EOF))
	assert.Equal(t, OutcomeNone, outcome)
	assert.True(t, rd.Over())
	assert.Empty(t, ui.outcomes)
}

func TestStep_BeforeStart(t *testing.T) {
	rd := NewRound(dealOrder(t, "2C"), &scriptUI{})
	assert.ErrorIs(t, rd.Step(), ErrNotStarted)
}

func TestSnapshot_JSON(t *testing.T) {
	ui := &scriptUI{draws: []bool{false}}
	rd := NewRound(dealOrder(t, "7C", "TS", "7H", "TD"), ui)
	_, err := rd.Play()
	require.NoError(t, err)

	b, err := json.Marshal(rd.Snapshot())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"phase": "terminal",
		"outcome": "stand-off",
		"standing": true,
		"deck_left": 0,
		"dealer": {"cards": ["7C", "TD"], "score": 17},
		"player": {"cards": ["TS", "7H"], "score": 17}
	}`, string(b))
}

func TestSummary(t *testing.T) {
	rd := NewRound(dealOrder(t, "7C", "TS", "7H", "2D"), &scriptUI{})
	require.NoError(t, rd.Start())

	s := rd.Summary()
	assert.Equal(t, "player-turn", s.Phase)
	assert.Equal(t, "none", s.Outcome)
	assert.Equal(t, 1, s.DeckLeft)
	require.Len(t, s.Seats, 2)
	assert.Equal(t, SeatView{Name: DealerName, Cards: mustCards(t, "7C"), Score: 7}, s.Seats[0])
	assert.Equal(t, 17, s.Seats[1].Score)
}
