package telemetry

import "sync"

// Report is one call recorded by MemoryAPI.
type Report struct {
	Id     string
	Params []any
}

// MemoryAPI implements API by recording every broken/warning report, it is used by tests
// to assert that a component reported what it should have.
type MemoryAPI struct {
	mutex    sync.Mutex
	Broken   []Report
	Warnings []Report
	Counts   map[string]int64
}

func NewMemoryAPI() *MemoryAPI {
	return &MemoryAPI{Counts: map[string]int64{}}
}

func (m *MemoryAPI) ReportBroken(id string, params ...any) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.Broken = append(m.Broken, Report{Id: id, Params: params})
}

func (m *MemoryAPI) ReportWarning(id string, params ...any) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.Warnings = append(m.Warnings, Report{Id: id, Params: params})
}

func (m *MemoryAPI) ReportDebug(msg string, params ...any) {}

func (m *MemoryAPI) ReportCount(id string, count int64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.Counts[id] = count
}

// BrokenIds returns the ids of every broken report in the order they were made.
func (m *MemoryAPI) BrokenIds() []string {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	ids := make([]string, len(m.Broken))
	for i, r := range m.Broken {
		ids[i] = r.Id
	}
	return ids
}
