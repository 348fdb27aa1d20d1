package game

import (
	"testing"

	"go-splendor/const_data"
	"go-splendor/entities"
)

func TestSeparateCards(t *testing.T) {
	// Given
	cards := []entities.Card{
		{
			Symbol: entities.GemDiamond,
			Points: 0,
			Level:  1,
			Price: entities.Price{
				entities.GemSapphire: 1,
				entities.GemEmerald:  1,
				entities.GemRuby:     1,
				entities.GemOnyx:     1,
			},
		},
		{
			Symbol: entities.GemEmerald,
			Points: 1,
			Level:  2,
			Price: entities.Price{
				entities.GemDiamond: 3,
				entities.GemEmerald: 2,
				entities.GemRuby:    3,
			},
		},
		{
			Symbol: entities.GemRuby,
			Points: 5,
			Level:  3,
			Price: entities.Price{
				entities.GemEmerald: 7,
				entities.GemRuby:    3,
			},
		},
	}

	// When
	separated := SeparateCards(cards)

	// Then
	for _, level := range entities.CardLevels {
		if len(separated[level]) != 1 {
			t.Fatalf("level %d: got %d cards, want 1", level, len(separated[level]))
		}
		if !separated[level][0].Equals(cards[level-1]) {
			t.Errorf("level %d: wrong card", level)
		}
	}
}

func TestPrepareCardsKeepsLevelsApart(t *testing.T) {
	prepared := PrepareCards(const_data.SplendorCards, testRng())

	total := 0
	for _, level := range entities.CardLevels {
		for _, card := range prepared[level] {
			if card.Level != level {
				t.Errorf("level %d pile contains a level %d card", level, card.Level)
			}
		}
		total += len(prepared[level])
	}
	if total != len(const_data.SplendorCards) {
		t.Errorf("prepared %d cards, want %d", total, len(const_data.SplendorCards))
	}
}

func TestPrepareCardsDeterministicWithSeed(t *testing.T) {
	first := PrepareCards(const_data.SplendorCards, testRng())
	second := PrepareCards(const_data.SplendorCards, testRng())

	for _, level := range entities.CardLevels {
		if len(first[level]) != len(second[level]) {
			t.Fatalf("level %d: pile sizes differ", level)
		}
		for i := range first[level] {
			if !first[level][i].Equals(second[level][i]) {
				t.Errorf("level %d: same seed should give the same order", level)
			}
		}
	}
}

func TestPrepareNobles(t *testing.T) {
	testCases := []struct {
		numberOfPlayers int
		expected        int
	}{
		{numberOfPlayers: 2, expected: 3},
		{numberOfPlayers: 3, expected: 4},
		{numberOfPlayers: 4, expected: 5},
	}
	for _, tc := range testCases {
		nobles, err := PrepareNobles(const_data.NobleTilesList, tc.numberOfPlayers, testRng())
		if err != nil {
			t.Fatalf("PrepareNobles(%d): %v", tc.numberOfPlayers, err)
		}
		if len(nobles) != tc.expected {
			t.Errorf("PrepareNobles(%d) = %d nobles, want %d", tc.numberOfPlayers, len(nobles), tc.expected)
		}
	}
}

func TestPrepareNoblesExhaustedCatalog(t *testing.T) {
	catalog := const_data.NobleTilesList[:3]
	if _, err := PrepareNobles(catalog, 4, testRng()); err == nil {
		t.Error("picking 5 nobles from a catalog of 3 should fail")
	}
}
