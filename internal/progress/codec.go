// internal/progress/codec.go
package progress

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"pixel-survivor/internal/defs"
)

var validate = validator.New()

// record — JSON-форма сохранения. Отсутствующие поля заполняются значениями
// по умолчанию, поэтому почти всё здесь указатели.
type record struct {
	SelectedClass         defs.Class                  `json:"selectedClass"`
	Progression           map[defs.Class]*classRecord `json:"progression"`
	ClearedChallengeStage *int                        `json:"clearedChallengeStage,omitempty" validate:"omitempty,gte=0,lte=99"`
}

type classRecord struct {
	Level *int             `json:"level,omitempty" validate:"omitempty,gte=1"`
	Exp   *int             `json:"exp,omitempty" validate:"omitempty,gte=0"`
	Stats defs.StatsRecord `json:"stats"`
}

// Encode serializes progress to the save format.
func Encode(p *GameProgress) ([]byte, error) {
	rec := record{
		SelectedClass:         p.SelectedClass,
		Progression:           make(map[defs.Class]*classRecord, len(p.Progression)),
		ClearedChallengeStage: &p.ClearedChallengeStage,
	}
	for c, prog := range p.Progression {
		level, exp := prog.Level, prog.Exp
		rec.Progression[c] = &classRecord{Level: &level, Exp: &exp, Stats: prog.Stats.Record()}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal progress: %w", err)
	}
	return data, nil
}

// Decode parses a save record. Missing classes, stats and the cleared stage are
// filled with defaults; an unknown selected class falls back to Gunner. A record
// that does not parse or fails validation is an error.
func Decode(data []byte) (*GameProgress, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	if err := validate.Struct(rec); err != nil {
		return nil, fmt.Errorf("invalid progress record: %w", err)
	}

	p := Default()
	if rec.SelectedClass.Valid() {
		p.SelectedClass = rec.SelectedClass
	}
	if rec.ClearedChallengeStage != nil {
		p.ClearedChallengeStage = *rec.ClearedChallengeStage
	}

	for c, cr := range rec.Progression {
		// Неизвестные классы и пустые записи пропускаем
		if !c.Valid() || cr == nil {
			continue
		}
		if err := validate.Struct(cr); err != nil {
			return nil, fmt.Errorf("invalid progression for %s: %w", c, err)
		}
		stats, err := defs.StatsFromRecord(c, cr.Stats)
		if err != nil {
			return nil, err
		}
		prog := p.Progression[c]
		prog.Stats = stats
		if cr.Level != nil {
			prog.Level = *cr.Level
		}
		if cr.Exp != nil {
			prog.Exp = *cr.Exp
		}
	}
	return p, nil
}
