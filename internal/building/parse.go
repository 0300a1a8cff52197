package building

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arx-evac/evacsim/internal/common/errs"
	"github.com/arx-evac/evacsim/internal/common/logger"
)

// Parse decodes the building JSON contract into an
// immutable Building. Elements with malformed fields (bad UUID,
// missing XY ring, unknown sign) are collected and reported together
// as a single IngestMalformed error; a partial Building is never
// returned when any offenses exist.
func Parse(log *logger.Logger, data []byte) (Building, error) {
	if log == nil {
		log = logger.Noop()
	}

	var wire wireBuilding
	if err := json.Unmarshal(data, &wire); err != nil {
		return Building{}, errs.Wrap(err, errs.CodeIngestMalformed, "decoding building JSON")
	}

	var offenses []errs.Offense
	levels := make([]Level, 0, len(wire.Level))

	for _, wl := range wire.Level {
		elements := make([]BuildElement, 0, len(wl.BuildElement))
		for _, we := range wl.BuildElement {
			el, problem := parseElement(we, wl.ZLevel)
			if problem != "" {
				offense := errs.Offense{
					Sign:  we.Sign,
					ID:    we.ID,
					Name:  we.Name,
					Level: wl.NameLevel,
					Note:  problem,
				}
				log.Error("ingest: malformed element",
					zap.String("sign", offense.Sign),
					zap.String("id", offense.ID),
					zap.String("level", offense.Level),
					zap.String("note", offense.Note),
				)
				offenses = append(offenses, offense)
				continue
			}
			elements = append(elements, el)
		}
		levels = append(levels, Level{Name: wl.NameLevel, ZLevel: wl.ZLevel, Elements: elements})
	}

	if err := errs.NewAggregate(errs.CodeIngestMalformed,
		"one or more building elements failed to parse", offenses); err != nil {
		return Building{}, err
	}

	return Building{Name: wire.NameBuilding, Address: wire.Address, Levels: levels}, nil
}

// parseElement converts one wire element into a BuildElement,
// returning a human-readable problem description instead of an error
// so the caller can batch offenses into one aggregated report.
func parseElement(we wireElement, zlevel float64) (BuildElement, string) {
	id, err := uuid.Parse(we.ID)
	if err != nil {
		return BuildElement{}, fmt.Sprintf("invalid id %q: %v", we.ID, err)
	}

	sign, ok := parseSign(we.Sign)
	if !ok {
		return BuildElement{}, fmt.Sprintf("unknown sign %q", we.Sign)
	}

	if len(we.XY) == 0 || len(we.XY[0].Points) == 0 {
		return BuildElement{}, "missing polygon points"
	}

	output := make([]uuid.UUID, 0, len(we.Output))
	for _, o := range we.Output {
		oid, err := uuid.Parse(o)
		if err != nil {
			return BuildElement{}, fmt.Sprintf("invalid output id %q: %v", o, err)
		}
		output = append(output, oid)
	}

	points := make([]BPoint, 0, len(we.XY[0].Points))
	for _, p := range we.XY[0].Points {
		points = append(points, BPoint{X: p.X, Y: p.Y, Z: zlevel})
	}

	sizeZ := we.SizeZ
	if sign == SignDoorWay {
		sizeZ = 0
	}

	return BuildElement{
		ID:      id,
		Sign:    sign,
		Polygon: points,
		Output:  output,
		Name:    we.Name,
		SizeZ:   sizeZ,
	}, ""
}
