package spell

import (
	"strings"

	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/document"
	"github.com/KirkDiggler/ddb-importer/internal/parsers/common"
)

// preparation decides how a spell is prepared from where it was granted
func (p *Parser) preparation(s *ddb.Spell) *document.Preparation {
	prep := &document.Preparation{
		Mode:     document.PreparationPrepared,
		Prepared: s.AlwaysPrepared || s.Prepared,
	}
	cantrip := s.Definition.Level == 0

	switch {
	case s.Lookup == ddb.LookupClassSpell, s.Lookup == ddb.LookupClassFeature && s.Class != "":
		p.classPreparation(s, prep)
	case s.Lookup == ddb.LookupRace && !cantrip:
		prep.Mode = document.PreparationInnate
		if s.UsesSpellSlot {
			prep.Mode = document.PreparationAlways
		}
	case strings.HasPrefix(s.LookupName, mysticArcanum):
		prep.Mode = document.PreparationPact
		prep.Prepared = false
	case s.Lookup == ddb.LookupItem && !cantrip:
		prep.Mode = document.PreparationPrepared
		prep.Prepared = false
	default:
		always := !s.UsesSpellSlot && !cantrip
		switch {
		case always && ritualOnly(s):
			prep.Mode = document.PreparationRitual
			prep.Prepared = false
		case always:
			prep.Mode = document.PreparationAtWill
		}
		if s.Lookup == ddb.LookupClassFeature && s.AlwaysPrepared {
			prep.Mode = document.PreparationAlways
		}
	}
	return prep
}

func (p *Parser) classPreparation(s *ddb.Spell, prep *document.Preparation) {
	cantrip := s.Definition.Level == 0

	switch {
	case s.Restriction == ddb.RestrictionRitualOnly || ritualOnly(s):
		prep.Mode = document.PreparationRitual
		prep.Prepared = false
	case !s.UsesSpellSlot && !cantrip:
		prep.Mode = document.PreparationInnate
	case s.AlwaysPrepared:
		prep.Mode = document.PreparationAlways
	default:
		if mode, ok := common.ClassPreparationMode(s.Class); ok {
			prep.Mode = mode
		}
	}

	// pact cantrips are listed with the other cantrips
	if prep.Mode == document.PreparationPact {
		if cantrip {
			prep.Mode = document.PreparationPrepared
			prep.Prepared = true
		} else if p.pactSpellsPrepared {
			prep.Prepared = true
		}
	}
}

func ritualOnly(s *ddb.Spell) bool {
	return s.RitualCastingType != nil || s.CastOnlyAsRitual
}
