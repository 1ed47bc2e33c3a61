package writer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/tamzrod/statusreg/internal/config"
	"github.com/tamzrod/statusreg/internal/status"
)

// ---- fake endpoint client ----

type writeCall struct {
	unitID uint8
	addr   uint16
	regs   []uint16
}

type fakeEndpointClient struct {
	writes []writeCall
	fail   bool
}

func (f *fakeEndpointClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	if f.fail {
		return errors.New("endpoint down")
	}
	f.writes = append(f.writes, writeCall{
		unitID: unitID,
		addr:   addr,
		regs:   append([]uint16(nil), regs...),
	})
	return nil
}

func (f *fakeEndpointClient) reset() {
	f.writes = nil
}

func testPlan() Plan {
	return Plan{Endpoint: "status-endpoint", UnitID: 9, BaseAddress: 100, NumBanks: 4}
}

func snap(cls status.Class, last status.ID, words ...uint16) status.Snapshot {
	return status.Snapshot{Class: cls, Words: words, LastSet: last}
}

// ---- layout ----

func TestPlan_Layout(t *testing.T) {
	p := testPlan()

	assert.Equal(t, 5, p.BlockSize())
	assert.Equal(t, uint16(100), p.ClassBase(status.Fault))
	assert.Equal(t, uint16(105), p.ClassBase(status.Warning))
	assert.Equal(t, uint16(110), p.ClassBase(status.Info))
}

func TestChangedRuns(t *testing.T) {
	assert.Nil(t, changedRuns([]uint16{1, 2, 3}, []uint16{1, 2, 3}))
	assert.Equal(t, []run{{0, 3}}, changedRuns(nil, []uint16{1, 2, 3}))
	assert.Equal(t,
		[]run{{0, 1}, {2, 4}},
		changedRuns([]uint16{0, 0, 0, 0, 0}, []uint16{1, 0, 2, 3, 0}),
	)
	assert.Equal(t, []run{{4, 5}}, changedRuns([]uint16{0, 0, 0, 0, 0}, []uint16{0, 0, 0, 0, 9}))
}

// ---- writer ----

func TestNewStatusWriter_Rejects(t *testing.T) {
	_, err := NewStatusWriter(testPlan(), nil)
	assert.Error(t, err)

	p := testPlan()
	p.NumBanks = 0
	_, err = NewStatusWriter(p, &fakeEndpointClient{})
	assert.Error(t, err)

	p = testPlan()
	p.BaseAddress = 0xFFFF
	_, err = NewStatusWriter(p, &fakeEndpointClient{})
	assert.Error(t, err)
}

func TestWriteStatus_FullThenIncremental(t *testing.T) {
	cli := &fakeEndpointClient{}
	w, err := NewStatusWriter(testPlan(), cli)
	require.NoError(t, err)

	// ---- first write: FULL ASSERT ----
	require.NoError(t, w.WriteStatus(snap(status.Warning, status.Unset, 0, 0, 0, 0)))
	require.Len(t, cli.writes, 1)
	assert.Equal(t, writeCall{unitID: 9, addr: 105, regs: []uint16{0, 0, 0, 0, 0xFFFF}}, cli.writes[0])

	// ---- unchanged: nothing written ----
	cli.reset()
	require.NoError(t, w.WriteStatus(snap(status.Warning, status.Unset, 0, 0, 0, 0)))
	assert.Empty(t, cli.writes)

	// ---- one bank word and last-set change ----
	cli.reset()
	id := status.Encode(3, 2)
	require.NoError(t, w.WriteStatus(snap(status.Warning, id, 0, 0, 0, 0x0004)))
	require.Len(t, cli.writes, 1)
	assert.Equal(t, writeCall{unitID: 9, addr: 108, regs: []uint16{0x0004, uint16(id)}}, cli.writes[0])

	// ---- disjoint changes: one write per run ----
	cli.reset()
	require.NoError(t, w.WriteStatus(snap(status.Warning, id, 1, 0, 0, 0x0004)))
	require.NoError(t, w.WriteStatus(snap(status.Warning, id, 1, 0, 0, 0)))
	require.Len(t, cli.writes, 2)
	assert.Equal(t, uint16(105), cli.writes[0].addr)
	assert.Equal(t, uint16(108), cli.writes[1].addr)
}

func TestWriteStatus_ClassesTrackedSeparately(t *testing.T) {
	cli := &fakeEndpointClient{}
	w, err := NewStatusWriter(testPlan(), cli)
	require.NoError(t, err)

	require.NoError(t, w.WriteStatus(snap(status.Fault, status.Unset, 0, 0, 0, 0)))
	require.NoError(t, w.WriteStatus(snap(status.Info, status.Unset, 0, 0, 0, 0)))

	require.Len(t, cli.writes, 2)
	assert.Len(t, cli.writes[0].regs, 5)
	assert.Len(t, cli.writes[1].regs, 5)
	assert.Equal(t, uint16(110), cli.writes[1].addr)
}

func TestWriteStatus_ReassertAfterFailure(t *testing.T) {
	cli := &fakeEndpointClient{}
	w, err := NewStatusWriter(testPlan(), cli)
	require.NoError(t, err)

	require.NoError(t, w.WriteStatus(snap(status.Fault, status.Unset, 0, 0, 0, 0)))

	cli.fail = true
	assert.Error(t, w.WriteStatus(snap(status.Fault, status.Encode(0, 0), 1, 0, 0, 0)))

	cli.fail = false
	cli.reset()
	require.NoError(t, w.WriteStatus(snap(status.Fault, status.Encode(0, 0), 1, 0, 0, 0)))

	require.Len(t, cli.writes, 1)
	assert.Equal(t, []uint16{1, 0, 0, 0, 0}, cli.writes[0].regs)
}

func TestWriteStatus_RejectsBadSnapshot(t *testing.T) {
	w, err := NewStatusWriter(testPlan(), &fakeEndpointClient{})
	require.NoError(t, err)

	assert.Error(t, w.WriteStatus(snap(status.Fault, status.Unset, 0, 0)))
	assert.Error(t, w.WriteStatus(snap(status.Class(5), status.Unset, 0, 0, 0, 0)))
}

// ---- publisher ----

func TestPublisher_PublishOnce(t *testing.T) {
	st, err := status.New(4, status.WithMutex())
	require.NoError(t, err)

	cli := &fakeEndpointClient{}
	w, err := NewStatusWriter(testPlan(), cli)
	require.NoError(t, err)

	pub, err := NewPublisher(st, w, time.Second, nil)
	require.NoError(t, err)

	st.SetFault(status.Encode(1, 15))
	st.SetInfo(status.Encode(0, 0))

	require.NoError(t, pub.PublishOnce())
	require.Len(t, cli.writes, 3)
	assert.Equal(t, []uint16{0, 0x8000, 0, 0, 0x001F}, cli.writes[0].regs)
	assert.Equal(t, []uint16{0, 0, 0, 0, 0xFFFF}, cli.writes[1].regs)
	assert.Equal(t, []uint16{1, 0, 0, 0, 0x0000}, cli.writes[2].regs)

	// clearing keeps the last-set word
	cli.reset()
	st.ClearFault(status.Encode(1, 15))
	require.NoError(t, pub.PublishOnce())
	require.Len(t, cli.writes, 1)
	assert.Equal(t, writeCall{unitID: 9, addr: 101, regs: []uint16{0}}, cli.writes[0])
}

func TestPublisher_JoinsClassErrors(t *testing.T) {
	st, err := status.New(4)
	require.NoError(t, err)

	cli := &fakeEndpointClient{fail: true}
	w, err := NewStatusWriter(testPlan(), cli)
	require.NoError(t, err)

	pub, err := NewPublisher(st, w, time.Second, nil)
	require.NoError(t, err)

	err = pub.PublishOnce()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fault")
	assert.Contains(t, err.Error(), "info")
}

func TestNewPublisher_Rejects(t *testing.T) {
	st, err := status.New(4)
	require.NoError(t, err)
	w, err := NewStatusWriter(testPlan(), &fakeEndpointClient{})
	require.NoError(t, err)

	_, err = NewPublisher(nil, w, time.Second, nil)
	assert.Error(t, err)
	_, err = NewPublisher(st, w, 0, nil)
	assert.Error(t, err)
}

// ---- builder ----

func TestBuildPlan(t *testing.T) {
	plan, err := BuildPlan(&cfg.PublishConfig{Endpoint: "ep", UnitID: 2, BaseAddress: 40}, 12)
	require.NoError(t, err)
	assert.Equal(t, Plan{Endpoint: "ep", UnitID: 2, BaseAddress: 40, NumBanks: 12}, plan)

	_, err = BuildPlan(nil, 12)
	assert.Error(t, err)
}

func TestBuildEndpointClient_UnknownTransport(t *testing.T) {
	_, _, err := BuildEndpointClient(&cfg.PublishConfig{Endpoint: "ep", Transport: "mqtt"})
	assert.Error(t, err)
}

func TestBuildEndpointClient_Ingest(t *testing.T) {
	cli, closeFn, err := BuildEndpointClient(&cfg.PublishConfig{Endpoint: "127.0.0.1:1", Transport: cfg.TransportIngest})
	require.NoError(t, err)
	assert.NotNil(t, cli)
	assert.NoError(t, closeFn())
}
