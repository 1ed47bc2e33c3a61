// Package statusids is an example application ID table.
//
// Every ID is built with status.Encode(bank, bit); bank must stay below the
// store's bank count and bit below 16. Copy and modify for your own device.
package statusids

import "github.com/tamzrod/statusreg/internal/status"

// ---- FAULTS ----

// Bank 0: power faults
var (
	FaultOvercurrent  = status.Encode(0, 0)
	FaultOvervoltage  = status.Encode(0, 1)
	FaultUndervoltage = status.Encode(0, 2)
	FaultDCBus        = status.Encode(0, 3)
)

// Bank 1: thermal faults
var (
	FaultOverTempAFE = status.Encode(1, 0)
	FaultOverTempInv = status.Encode(1, 1)
)

// Bank 2: communication faults
var (
	FaultCANTimeout    = status.Encode(2, 0)
	FaultModuleMissing = status.Encode(2, 1)
)

// ---- WARNINGS ----

// Bank 3: power warnings
var (
	WarnVoltageFluct = status.Encode(3, 0)
	WarnCurrentNoise = status.Encode(3, 1)
)

// Bank 4: thermal warnings
var (
	WarnTempNearLimit = status.Encode(4, 0)
	WarnFanPerfDrop   = status.Encode(4, 1)
)

// Bank 5: communication warnings
var (
	WarnCANLoadHigh   = status.Encode(5, 0)
	WarnBroadcastLoss = status.Encode(5, 1)
)

// ---- INFO ----

var (
	InfoACLive       = status.Encode(0, 0) // bank 0: power
	InfoTempChanging = status.Encode(1, 0) // bank 1: thermal
	InfoCANActive    = status.Encode(2, 0) // bank 2: communication
)

// Entry names one ID of the table.
type Entry struct {
	Name  string
	Class status.Class
	ID    status.ID
}

// Table returns every ID in declaration order.
func Table() []Entry {
	return []Entry{
		{"fault_overcurrent", status.Fault, FaultOvercurrent},
		{"fault_overvoltage", status.Fault, FaultOvervoltage},
		{"fault_undervoltage", status.Fault, FaultUndervoltage},
		{"fault_dc_bus", status.Fault, FaultDCBus},
		{"fault_over_temp_afe", status.Fault, FaultOverTempAFE},
		{"fault_over_temp_inv", status.Fault, FaultOverTempInv},
		{"fault_can_timeout", status.Fault, FaultCANTimeout},
		{"fault_module_missing", status.Fault, FaultModuleMissing},
		{"warn_voltage_fluct", status.Warning, WarnVoltageFluct},
		{"warn_current_noise", status.Warning, WarnCurrentNoise},
		{"warn_temp_near_limit", status.Warning, WarnTempNearLimit},
		{"warn_fan_perf_drop", status.Warning, WarnFanPerfDrop},
		{"warn_can_load_high", status.Warning, WarnCANLoadHigh},
		{"warn_broadcast_loss", status.Warning, WarnBroadcastLoss},
		{"info_ac_live", status.Info, InfoACLive},
		{"info_temp_changing", status.Info, InfoTempChanging},
		{"info_can_active", status.Info, InfoCANActive},
	}
}
