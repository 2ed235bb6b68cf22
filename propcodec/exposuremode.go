package propcodec

import (
	"github.com/hanwen/go-ptpip/ptpip"
)

// ExposureMode is the exposure program. Its values are the wire codes.
type ExposureMode uint32

const (
	ExposureManual                        ExposureMode = 0x00000001
	ExposureProgrammedAuto                ExposureMode = 0x00010002
	ExposureAperturePriority              ExposureMode = 0x00020003
	ExposureShutterPriority               ExposureMode = 0x00030004
	ExposureIntelligentAuto               ExposureMode = 0x00048000
	ExposureSuperiorAuto                  ExposureMode = 0x00048001
	ExposurePanorama                      ExposureMode = 0x00068041
	ExposureVideoProgrammedAuto           ExposureMode = 0x00078050
	ExposureVideoAperturePriority         ExposureMode = 0x00078051
	ExposureVideoShutterPriority          ExposureMode = 0x00078052
	ExposureVideoManual                   ExposureMode = 0x00078053
	ExposureHighFrameRateProgrammedAuto   ExposureMode = 0x00088080
	ExposureHighFrameRateAperturePriority ExposureMode = 0x00088081
	ExposureHighFrameRateShutterPriority  ExposureMode = 0x00088082
	ExposureHighFrameRateManual           ExposureMode = 0x00088083
	ExposureSlowQuickProgrammedAuto       ExposureMode = 0x00098059
	ExposureSlowQuickAperturePriority     ExposureMode = 0x0009805a
	ExposureSlowQuickShutterPriority      ExposureMode = 0x0009805b
	ExposureSlowQuickManual               ExposureMode = 0x0009805c

	ScenePortrait         ExposureMode = 0x00000007
	SceneSport            ExposureMode = 0x00058011
	SceneSunset           ExposureMode = 0x00058012
	SceneNight            ExposureMode = 0x00058013
	SceneLandscape        ExposureMode = 0x00058014
	SceneMacro            ExposureMode = 0x00058015
	SceneHandheldTwilight ExposureMode = 0x00058016
	SceneNightPortrait    ExposureMode = 0x00058017
	SceneAntiMotionBlur   ExposureMode = 0x00058018
	ScenePet              ExposureMode = 0x00058019
	SceneFood             ExposureMode = 0x0005801a
	SceneFireworks        ExposureMode = 0x0005801b
	SceneHighSensitivity  ExposureMode = 0x0005801c
)

// sceneGroup is the high word shared by the scene selections.
const sceneGroup = 0x0005

var exposureModes = &enum{
	code: ptpip.DPC_ExposureProgramMode,
	typ:  ptpip.DTC_UINT32,
	names: map[uint32]string{
		uint32(ExposureManual):                        "M",
		uint32(ExposureProgrammedAuto):                "P",
		uint32(ExposureAperturePriority):              "A",
		uint32(ExposureShutterPriority):               "S",
		uint32(ExposureIntelligentAuto):               "intelligent auto",
		uint32(ExposureSuperiorAuto):                  "superior auto",
		uint32(ExposurePanorama):                      "panorama",
		uint32(ExposureVideoProgrammedAuto):           "movie P",
		uint32(ExposureVideoAperturePriority):         "movie A",
		uint32(ExposureVideoShutterPriority):          "movie S",
		uint32(ExposureVideoManual):                   "movie M",
		uint32(ExposureHighFrameRateProgrammedAuto):   "HFR P",
		uint32(ExposureHighFrameRateAperturePriority): "HFR A",
		uint32(ExposureHighFrameRateShutterPriority):  "HFR S",
		uint32(ExposureHighFrameRateManual):           "HFR M",
		uint32(ExposureSlowQuickProgrammedAuto):       "S&Q P",
		uint32(ExposureSlowQuickAperturePriority):     "S&Q A",
		uint32(ExposureSlowQuickShutterPriority):      "S&Q S",
		uint32(ExposureSlowQuickManual):               "S&Q M",
		uint32(ScenePortrait):                         "portrait",
	},
}

var scenes = &enum{
	code: ptpip.DPC_ExposureProgramMode,
	typ:  ptpip.DTC_UINT32,
	names: map[uint32]string{
		uint32(SceneSport):            "sport",
		uint32(SceneSunset):           "sunset",
		uint32(SceneNight):            "night",
		uint32(SceneLandscape):        "landscape",
		uint32(SceneMacro):            "macro",
		uint32(SceneHandheldTwilight): "handheld twilight",
		uint32(SceneNightPortrait):    "night portrait",
		uint32(SceneAntiMotionBlur):   "anti motion blur",
		uint32(ScenePet):              "pet",
		uint32(SceneFood):             "food",
		uint32(SceneFireworks):        "fireworks",
		uint32(SceneHighSensitivity):  "high sensitivity",
	},
}

func (m ExposureMode) table() *enum {
	if uint32(m)>>16 == sceneGroup {
		return scenes
	}
	return exposureModes
}

// IsScene reports whether m is a scene selection.
func (m ExposureMode) IsScene() bool {
	return m == ScenePortrait || m.table() == scenes
}

func ExposureModeFromWire(raw ptpip.DataDependentType) (ExposureMode, bool) {
	v, ok := raw32(raw)
	if !ok {
		return 0, false
	}
	v, ok = ExposureMode(v).table().decode(v)
	return ExposureMode(v), ok
}

func (m ExposureMode) ToWire() Wire   { return m.table().wire(uint32(m)) }
func (m ExposureMode) String() string { return m.table().name(uint32(m)) }

// DialControl says whether the mode dial on the body or the remote client
// selects the exposure mode.
type DialControl uint8

const (
	DialCamera DialControl = 0x00
	DialApp    DialControl = 0x01
)

var dialControl = &enum{
	code: ptpip.DPC_SONY_ExposureProgramModeControl,
	typ:  ptpip.DTC_UINT8,
	names: map[uint32]string{
		uint32(DialCamera): "camera",
		uint32(DialApp):    "app",
	},
}

func DialControlFromWire(raw ptpip.DataDependentType) (DialControl, bool) {
	v, ok := dialControl.decode(raw)
	return DialControl(v), ok
}

func (d DialControl) ToWire() Wire   { return dialControl.wire(uint32(d)) }
func (d DialControl) String() string { return dialControl.name(uint32(d)) }
