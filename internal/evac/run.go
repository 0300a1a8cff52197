package evac

import "go.uber.org/zap"

// Run steps the simulation until the building empties to within
// EmptyTolerance or MaxTicks is reached, whichever comes first,
// logging a warning if the cap is hit without the building emptying.
func (m *Moving) Run() {
	for m.ticks < m.cfg.MaxTicks {
		m.Step()
		if m.bim.NumOfPeople() <= m.cfg.EmptyTolerance {
			return
		}
	}
	m.log.Warn("evac: reached tick cap before the building emptied",
		zap.Int("max_ticks", m.cfg.MaxTicks),
		zap.Float64("remaining_people", m.bim.NumOfPeople()),
	)
}
