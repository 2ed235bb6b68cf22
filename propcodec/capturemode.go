package propcodec

import (
	"github.com/hanwen/go-ptpip/ptpip"
)

// StillCaptureMode is the drive mode: single shot, continuous, self timer,
// bracketing or burst. Its values are the wire codes.
type StillCaptureMode uint32

const (
	CaptureSingle                  StillCaptureMode = 0x00000001
	CaptureContinuous              StillCaptureMode = 0x00018015
	CaptureContinuousLow           StillCaptureMode = 0x00018012
	CaptureContinuousHigh          StillCaptureMode = 0x00010002
	CaptureContinuousHighPlus      StillCaptureMode = 0x00018010
	CaptureContinuousS             StillCaptureMode = 0x00018014
	CaptureSelfTimer2              StillCaptureMode = 0x00038005
	CaptureSelfTimer5              StillCaptureMode = 0x00038003
	CaptureSelfTimer10             StillCaptureMode = 0x00038004
	CaptureSelfTimer10x3           StillCaptureMode = 0x00088008
	CaptureSelfTimer10x5           StillCaptureMode = 0x00088009
	CaptureSelfTimer5x3            StillCaptureMode = 0x0008800c
	CaptureSelfTimer5x5            StillCaptureMode = 0x0008800d
	CaptureSelfTimer2x3            StillCaptureMode = 0x0008800e
	CaptureSelfTimer2x5            StillCaptureMode = 0x0008800f
	CaptureContinuousBracket03x3   StillCaptureMode = 0x00048337
	CaptureContinuousBracket03x5   StillCaptureMode = 0x00048537
	CaptureContinuousBracket03x9   StillCaptureMode = 0x00048937
	CaptureContinuousBracket05x3   StillCaptureMode = 0x00048357
	CaptureContinuousBracket05x5   StillCaptureMode = 0x00048557
	CaptureContinuousBracket05x9   StillCaptureMode = 0x00048957
	CaptureContinuousBracket07x3   StillCaptureMode = 0x00048377
	CaptureContinuousBracket07x5   StillCaptureMode = 0x00048577
	CaptureContinuousBracket07x9   StillCaptureMode = 0x00048977
	CaptureContinuousBracket1x3    StillCaptureMode = 0x00048311
	CaptureContinuousBracket1x5    StillCaptureMode = 0x00048511
	CaptureContinuousBracket1x9    StillCaptureMode = 0x00048911
	CaptureContinuousBracket2x3    StillCaptureMode = 0x00048321
	CaptureContinuousBracket2x5    StillCaptureMode = 0x00048521
	CaptureContinuousBracket3x3    StillCaptureMode = 0x00048331
	CaptureContinuousBracket3x5    StillCaptureMode = 0x00048531
	CaptureSingleBracket03x3       StillCaptureMode = 0x00058336
	CaptureSingleBracket03x5       StillCaptureMode = 0x00058536
	CaptureSingleBracket03x9       StillCaptureMode = 0x00058936
	CaptureSingleBracket05x3       StillCaptureMode = 0x00058356
	CaptureSingleBracket05x5       StillCaptureMode = 0x00058556
	CaptureSingleBracket05x9       StillCaptureMode = 0x00058956
	CaptureSingleBracket07x3       StillCaptureMode = 0x00058376
	CaptureSingleBracket07x5       StillCaptureMode = 0x00058576
	CaptureSingleBracket07x9       StillCaptureMode = 0x00058976
	CaptureSingleBracket1x3        StillCaptureMode = 0x00058310
	CaptureSingleBracket1x5        StillCaptureMode = 0x00058510
	CaptureSingleBracket1x9        StillCaptureMode = 0x00058910
	CaptureSingleBracket2x3        StillCaptureMode = 0x00058320
	CaptureSingleBracket2x5        StillCaptureMode = 0x00058520
	CaptureSingleBracket3x3        StillCaptureMode = 0x00058330
	CaptureSingleBracket3x5        StillCaptureMode = 0x00058530
	CaptureSingleBurstLow          StillCaptureMode = 0x00098030
	CaptureSingleBurstMedium       StillCaptureMode = 0x00098031
	CaptureSingleBurstHigh         StillCaptureMode = 0x00098032
	CaptureWhiteBalanceBracketLow  StillCaptureMode = 0x00068018
	CaptureWhiteBalanceBracketHigh StillCaptureMode = 0x00068028
	CaptureDROBracketLow           StillCaptureMode = 0x00078019
	CaptureDROBracketHigh          StillCaptureMode = 0x00078029
)

var captureModes = &enum{
	code: ptpip.DPC_StillCaptureMode,
	typ:  ptpip.DTC_UINT32,
	names: map[uint32]string{
		uint32(CaptureSingle):                  "single",
		uint32(CaptureContinuous):              "continuous",
		uint32(CaptureContinuousLow):           "continuous low",
		uint32(CaptureContinuousHigh):          "continuous high",
		uint32(CaptureContinuousHighPlus):      "continuous high+",
		uint32(CaptureContinuousS):             "continuous S",
		uint32(CaptureSelfTimer2):              "self timer 2s",
		uint32(CaptureSelfTimer5):              "self timer 5s",
		uint32(CaptureSelfTimer10):             "self timer 10s",
		uint32(CaptureSelfTimer10x3):           "self timer 10s x3",
		uint32(CaptureSelfTimer10x5):           "self timer 10s x5",
		uint32(CaptureSelfTimer5x3):            "self timer 5s x3",
		uint32(CaptureSelfTimer5x5):            "self timer 5s x5",
		uint32(CaptureSelfTimer2x3):            "self timer 2s x3",
		uint32(CaptureSelfTimer2x5):            "self timer 2s x5",
		uint32(CaptureContinuousBracket03x3):   "continuous bracket 0.3 EV x3",
		uint32(CaptureContinuousBracket03x5):   "continuous bracket 0.3 EV x5",
		uint32(CaptureContinuousBracket03x9):   "continuous bracket 0.3 EV x9",
		uint32(CaptureContinuousBracket05x3):   "continuous bracket 0.5 EV x3",
		uint32(CaptureContinuousBracket05x5):   "continuous bracket 0.5 EV x5",
		uint32(CaptureContinuousBracket05x9):   "continuous bracket 0.5 EV x9",
		uint32(CaptureContinuousBracket07x3):   "continuous bracket 0.7 EV x3",
		uint32(CaptureContinuousBracket07x5):   "continuous bracket 0.7 EV x5",
		uint32(CaptureContinuousBracket07x9):   "continuous bracket 0.7 EV x9",
		uint32(CaptureContinuousBracket1x3):    "continuous bracket 1.0 EV x3",
		uint32(CaptureContinuousBracket1x5):    "continuous bracket 1.0 EV x5",
		uint32(CaptureContinuousBracket1x9):    "continuous bracket 1.0 EV x9",
		uint32(CaptureContinuousBracket2x3):    "continuous bracket 2.0 EV x3",
		uint32(CaptureContinuousBracket2x5):    "continuous bracket 2.0 EV x5",
		uint32(CaptureContinuousBracket3x3):    "continuous bracket 3.0 EV x3",
		uint32(CaptureContinuousBracket3x5):    "continuous bracket 3.0 EV x5",
		uint32(CaptureSingleBracket03x3):       "single bracket 0.3 EV x3",
		uint32(CaptureSingleBracket03x5):       "single bracket 0.3 EV x5",
		uint32(CaptureSingleBracket03x9):       "single bracket 0.3 EV x9",
		uint32(CaptureSingleBracket05x3):       "single bracket 0.5 EV x3",
		uint32(CaptureSingleBracket05x5):       "single bracket 0.5 EV x5",
		uint32(CaptureSingleBracket05x9):       "single bracket 0.5 EV x9",
		uint32(CaptureSingleBracket07x3):       "single bracket 0.7 EV x3",
		uint32(CaptureSingleBracket07x5):       "single bracket 0.7 EV x5",
		uint32(CaptureSingleBracket07x9):       "single bracket 0.7 EV x9",
		uint32(CaptureSingleBracket1x3):        "single bracket 1.0 EV x3",
		uint32(CaptureSingleBracket1x5):        "single bracket 1.0 EV x5",
		uint32(CaptureSingleBracket1x9):        "single bracket 1.0 EV x9",
		uint32(CaptureSingleBracket2x3):        "single bracket 2.0 EV x3",
		uint32(CaptureSingleBracket2x5):        "single bracket 2.0 EV x5",
		uint32(CaptureSingleBracket3x3):        "single bracket 3.0 EV x3",
		uint32(CaptureSingleBracket3x5):        "single bracket 3.0 EV x5",
		uint32(CaptureSingleBurstLow):          "single burst low",
		uint32(CaptureSingleBurstMedium):       "single burst medium",
		uint32(CaptureSingleBurstHigh):         "single burst high",
		uint32(CaptureWhiteBalanceBracketLow):  "white balance bracket low",
		uint32(CaptureWhiteBalanceBracketHigh): "white balance bracket high",
		uint32(CaptureDROBracketLow):           "DRO bracket low",
		uint32(CaptureDROBracketHigh):          "DRO bracket high",
	},
}

func StillCaptureModeFromWire(raw ptpip.DataDependentType) (StillCaptureMode, bool) {
	v, ok := captureModes.decode(raw)
	return StillCaptureMode(v), ok
}

func (m StillCaptureMode) ToWire() Wire   { return captureModes.wire(uint32(m)) }
func (m StillCaptureMode) String() string { return captureModes.name(uint32(m)) }

// ShootMode groups drive modes.
type ShootMode int

const (
	ShootUnknown ShootMode = iota
	ShootPhoto
	ShootContinuous
	ShootSingleBracket
	ShootContinuousBracket
	ShootMultiTimer
	ShootBurst
)

var shootModeNames = map[ShootMode]string{
	ShootUnknown:           "unknown",
	ShootPhoto:             "photo",
	ShootContinuous:        "continuous",
	ShootSingleBracket:     "single bracket",
	ShootContinuousBracket: "continuous bracket",
	ShootMultiTimer:        "multi timer",
	ShootBurst:             "burst",
}

func (s ShootMode) String() string { return shootModeNames[s] }

// ShootMode derives the group from the high word of the code.
func (m StillCaptureMode) ShootMode() ShootMode {
	switch m {
	case CaptureSingle, CaptureSelfTimer2, CaptureSelfTimer5, CaptureSelfTimer10:
		return ShootPhoto
	case CaptureContinuous, CaptureContinuousLow, CaptureContinuousHigh,
		CaptureContinuousHighPlus, CaptureContinuousS:
		return ShootContinuous
	}
	if _, ok := captureModes.names[uint32(m)]; !ok {
		return ShootUnknown
	}
	switch uint32(m) >> 16 {
	case 0x0004:
		return ShootContinuousBracket
	case 0x0005, 0x0006, 0x0007:
		return ShootSingleBracket
	case 0x0008:
		return ShootMultiTimer
	case 0x0009:
		return ShootBurst
	}
	return ShootUnknown
}

// TimerSeconds is the self timer delay, or 0 when no timer is involved.
func (m StillCaptureMode) TimerSeconds() int {
	switch m {
	case CaptureSelfTimer2, CaptureSelfTimer2x3, CaptureSelfTimer2x5:
		return 2
	case CaptureSelfTimer5, CaptureSelfTimer5x3, CaptureSelfTimer5x5:
		return 5
	case CaptureSelfTimer10, CaptureSelfTimer10x3, CaptureSelfTimer10x5:
		return 10
	}
	return 0
}

// ContinuousSpeed is the frame rate class of continuous shooting. It has
// no property of its own and travels as a StillCaptureMode.
type ContinuousSpeed int

const (
	SpeedRegular ContinuousSpeed = iota
	SpeedLow
	SpeedHigh
	SpeedHighPlus
	SpeedS
	SpeedTenFPS1Sec
	SpeedEightFPS1Sec
	SpeedFiveFPS2Sec
	SpeedTwoFPS5Sec
)

var continuousSpeedNames = map[ContinuousSpeed]string{
	SpeedRegular:      "regular",
	SpeedLow:          "low",
	SpeedHigh:         "high",
	SpeedHighPlus:     "high+",
	SpeedS:            "S",
	SpeedTenFPS1Sec:   "10fps 1s",
	SpeedEightFPS1Sec: "8fps 1s",
	SpeedFiveFPS2Sec:  "5fps 2s",
	SpeedTwoFPS5Sec:   "2fps 5s",
}

// CaptureMode returns the drive mode selecting s. The timed variants have
// no code of their own and select plain continuous shooting.
func (s ContinuousSpeed) CaptureMode() StillCaptureMode {
	switch s {
	case SpeedLow:
		return CaptureContinuousLow
	case SpeedHigh:
		return CaptureContinuousHigh
	case SpeedHighPlus:
		return CaptureContinuousHighPlus
	case SpeedS:
		return CaptureContinuousS
	}
	return CaptureContinuous
}

// ContinuousSpeed is the speed of a continuous drive mode.
func (m StillCaptureMode) ContinuousSpeed() (ContinuousSpeed, bool) {
	switch m {
	case CaptureContinuous:
		return SpeedRegular, true
	case CaptureContinuousLow:
		return SpeedLow, true
	case CaptureContinuousHigh:
		return SpeedHigh, true
	case CaptureContinuousHighPlus:
		return SpeedHighPlus, true
	case CaptureContinuousS:
		return SpeedS, true
	}
	return 0, false
}

func ContinuousSpeedFromWire(raw ptpip.DataDependentType) (ContinuousSpeed, bool) {
	m, ok := StillCaptureModeFromWire(raw)
	if !ok {
		return 0, false
	}
	return m.ContinuousSpeed()
}

func (s ContinuousSpeed) ToWire() Wire   { return s.CaptureMode().ToWire() }
func (s ContinuousSpeed) String() string { return continuousSpeedNames[s] }
