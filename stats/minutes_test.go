package stats

import (
	"testing"

	"github.com/Dosada05/club-system/models"
)

func intPtr(v int) *int { return &v }

func TestComputeMinutes_Starter(t *testing.T) {
	tests := []struct {
		name string
		stat models.GameStat
		want int
	}{
		{
			name: "full match without substitutions",
			stat: models.GameStat{Started: true},
			want: 90,
		},
		{
			name: "substituted off at 65",
			stat: models.GameStat{
				Started:       true,
				Substitutions: []models.SubstitutionEntry{{OutMinute: intPtr(65), ReplacedBy: intPtr(2)}},
			},
			want: 65,
		},
		{
			name: "legacy single substitution minute",
			stat: models.GameStat{
				Started:            true,
				SubstitutionMinute: intPtr(70),
			},
			want: 70,
		},
		{
			name: "re-entered and played to the end",
			stat: models.GameStat{
				Started: true,
				Substitutions: []models.SubstitutionEntry{
					{OutMinute: intPtr(30)},
					{InMinute: intPtr(60)},
				},
			},
			want: 60,
		},
		{
			name: "re-entered for a bounded interval",
			stat: models.GameStat{
				Started: true,
				Substitutions: []models.SubstitutionEntry{
					{OutMinute: intPtr(20)},
					{InMinute: intPtr(45), OutMinute: intPtr(75)},
				},
			},
			want: 50,
		},
		{
			name: "new model wins over legacy field",
			stat: models.GameStat{
				Started:            true,
				SubstitutionMinute: intPtr(40),
				Substitutions:      []models.SubstitutionEntry{{OutMinute: intPtr(55)}},
			},
			want: 55,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMinutes(tt.stat, 90)
			if got != tt.want {
				t.Errorf("ComputeMinutes: want %d, got %d", tt.want, got)
			}
		})
	}
}

func TestComputeMinutes_Substitute(t *testing.T) {
	tests := []struct {
		name string
		stat models.GameStat
		want int
	}{
		{
			name: "never appeared",
			stat: models.GameStat{},
			want: 0,
		},
		{
			name: "came on at 65 and stayed",
			stat: models.GameStat{
				Substitutions: []models.SubstitutionEntry{{InMinute: intPtr(65)}},
			},
			want: 25,
		},
		{
			name: "legacy substitution in minute",
			stat: models.GameStat{SubstitutionInMinute: intPtr(80)},
			want: 10,
		},
		{
			name: "two spells on the field",
			stat: models.GameStat{
				Substitutions: []models.SubstitutionEntry{
					{InMinute: intPtr(10), OutMinute: intPtr(30)},
					{InMinute: intPtr(70)},
				},
			},
			want: 40,
		},
		{
			name: "malformed interval contributes zero",
			stat: models.GameStat{
				Substitutions: []models.SubstitutionEntry{
					{InMinute: intPtr(60), OutMinute: intPtr(40)},
					{InMinute: intPtr(85)},
				},
			},
			want: 5,
		},
		{
			name: "entry with only out minute is ignored",
			stat: models.GameStat{
				Substitutions: []models.SubstitutionEntry{{OutMinute: intPtr(30)}},
			},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMinutes(tt.stat, 90)
			if got != tt.want {
				t.Errorf("ComputeMinutes: want %d, got %d", tt.want, got)
			}
		})
	}
}

func TestComputeMinutes_PairedSubstitutionScenario(t *testing.T) {
	// Сценарий из двух связанных записей: стартер уходит на 65-й,
	// сменщик выходит на той же минуте и доигрывает матч.
	starter := models.GameStat{
		PlayerID:      1,
		Started:       true,
		Substitutions: []models.SubstitutionEntry{{OutMinute: intPtr(65), ReplacedBy: intPtr(2)}},
	}
	sub := models.GameStat{
		PlayerID:      2,
		Substitutions: []models.SubstitutionEntry{{InMinute: intPtr(65)}},
	}

	if got := ComputeMinutes(starter, 90); got != 65 {
		t.Errorf("starter minutes: want 65, got %d", got)
	}
	if got := ComputeMinutes(sub, 90); got != 25 {
		t.Errorf("substitute minutes: want 25, got %d", got)
	}
}

func TestComputeMinutes_DefaultsDuration(t *testing.T) {
	stat := models.GameStat{Started: true}
	if got := ComputeMinutes(stat, 0); got != models.DefaultGameDuration {
		t.Errorf("zero duration should fall back to %d, got %d", models.DefaultGameDuration, got)
	}
}

func TestComputeMinutes_NeverNegative(t *testing.T) {
	stat := models.GameStat{
		Started:            true,
		SubstitutionMinute: intPtr(-15),
	}
	if got := ComputeMinutes(stat, 90); got != 0 {
		t.Errorf("negative legacy minute should clamp to 0, got %d", got)
	}
}

func TestComputeMinutes_Pure(t *testing.T) {
	stat := models.GameStat{
		Started: true,
		Substitutions: []models.SubstitutionEntry{
			{OutMinute: intPtr(30)},
			{InMinute: intPtr(50), OutMinute: intPtr(80)},
		},
	}
	first := ComputeMinutes(stat, 90)
	for i := 0; i < 10; i++ {
		if got := ComputeMinutes(stat, 90); got != first {
			t.Fatalf("ComputeMinutes is not deterministic: %d vs %d", got, first)
		}
	}
	if len(stat.Substitutions) != 2 {
		t.Fatalf("input was mutated")
	}
}
