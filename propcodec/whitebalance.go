package propcodec

import (
	"github.com/hanwen/go-ptpip/ptpip"
)

type WhiteBalance uint16

const (
	WhiteBalanceAuto                WhiteBalance = 0x0002
	WhiteBalanceDaylight            WhiteBalance = 0x0004
	WhiteBalanceIncandescent        WhiteBalance = 0x0006
	WhiteBalanceFlash               WhiteBalance = 0x0007
	WhiteBalanceFluorescentWarm     WhiteBalance = 0x8001
	WhiteBalanceFluorescentCool     WhiteBalance = 0x8002
	WhiteBalanceFluorescentDay      WhiteBalance = 0x8003
	WhiteBalanceFluorescentDaylight WhiteBalance = 0x8004
	WhiteBalanceCloudy              WhiteBalance = 0x8010
	WhiteBalanceShade               WhiteBalance = 0x8011
	WhiteBalanceColorTemp           WhiteBalance = 0x8012
	WhiteBalanceCustom1             WhiteBalance = 0x8020
	WhiteBalanceCustom2             WhiteBalance = 0x8021
	WhiteBalanceCustom3             WhiteBalance = 0x8022
	WhiteBalanceUnderwaterAuto      WhiteBalance = 0x8030
)

var whiteBalance = &enum{
	code: ptpip.DPC_WhiteBalance,
	typ:  ptpip.DTC_UINT16,
	names: map[uint32]string{
		uint32(WhiteBalanceAuto):                "auto",
		uint32(WhiteBalanceDaylight):            "daylight",
		uint32(WhiteBalanceIncandescent):        "incandescent",
		uint32(WhiteBalanceFlash):               "flash",
		uint32(WhiteBalanceFluorescentWarm):     "fluorescent warm white",
		uint32(WhiteBalanceFluorescentCool):     "fluorescent cool white",
		uint32(WhiteBalanceFluorescentDay):      "fluorescent day white",
		uint32(WhiteBalanceFluorescentDaylight): "fluorescent daylight",
		uint32(WhiteBalanceCloudy):              "cloudy",
		uint32(WhiteBalanceShade):               "shade",
		uint32(WhiteBalanceColorTemp):           "color temperature",
		uint32(WhiteBalanceCustom1):             "custom 1",
		uint32(WhiteBalanceCustom2):             "custom 2",
		uint32(WhiteBalanceCustom3):             "custom 3",
		uint32(WhiteBalanceUnderwaterAuto):      "underwater auto",
	},
}

func WhiteBalanceFromWire(raw ptpip.DataDependentType) (WhiteBalance, bool) {
	v, ok := whiteBalance.decode(raw)
	return WhiteBalance(v), ok
}

func (w WhiteBalance) ToWire() Wire   { return whiteBalance.wire(uint32(w)) }
func (w WhiteBalance) String() string { return whiteBalance.name(uint32(w)) }
