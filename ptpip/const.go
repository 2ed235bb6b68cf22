package ptpip

// DO NOT EDIT : generated automatically

const PT_Unknown = 0x00000000
const PT_InitCommandRequest = 0x00000001
const PT_InitCommandAck = 0x00000002
const PT_InitEventRequest = 0x00000003
const PT_InitEventAck = 0x00000004
const PT_InitFail = 0x00000005
const PT_CommandRequest = 0x00000006
const PT_CommandResponse = 0x00000007
const PT_Event = 0x00000008
const PT_StartData = 0x00000009
const PT_Data = 0x0000000A
const PT_Cancel = 0x0000000B
const PT_EndData = 0x0000000C
const PT_Ping = 0x0000000D
const PT_Pong = 0x0000000E
const PT_SonyFiller = 0x0000FFFF

var PT_names = map[int]string{0x00000000: "Unknown",
	0x00000001: "InitCommandRequest",
	0x00000002: "InitCommandAck",
	0x00000003: "InitEventRequest",
	0x00000004: "InitEventAck",
	0x00000005: "InitFail",
	0x00000006: "CommandRequest",
	0x00000007: "CommandResponse",
	0x00000008: "Event",
	0x00000009: "StartData",
	0x0000000A: "Data",
	0x0000000B: "Cancel",
	0x0000000C: "EndData",
	0x0000000D: "Ping",
	0x0000000E: "Pong",
	0x0000FFFF: "SonyFiller",
}

const OC_GetDeviceInfo = 0x1001
const OC_OpenSession = 0x1002
const OC_CloseSession = 0x1003
const OC_GetStorageIDs = 0x1004
const OC_GetStorageInfo = 0x1005
const OC_GetNumObjects = 0x1006
const OC_GetObjectHandles = 0x1007
const OC_GetObjectInfo = 0x1008
const OC_GetObject = 0x1009
const OC_GetThumb = 0x100A
const OC_DeleteObject = 0x100B
const OC_SendObjectInfo = 0x100C
const OC_SendObject = 0x100D
const OC_InitiateCapture = 0x100E
const OC_FormatStore = 0x100F
const OC_ResetDevice = 0x1010
const OC_SelfTest = 0x1011
const OC_SetObjectProtection = 0x1012
const OC_PowerDown = 0x1013
const OC_GetDevicePropDesc = 0x1014
const OC_GetDevicePropValue = 0x1015
const OC_SetDevicePropValue = 0x1016
const OC_ResetDevicePropValue = 0x1017
const OC_TerminateOpenCapture = 0x1018
const OC_MoveObject = 0x1019
const OC_CopyObject = 0x101A
const OC_GetPartialObject = 0x101B
const OC_InitiateOpenCapture = 0x101C
const OC_SONY_SDIOConnect = 0x9201
const OC_SONY_SDIOGetExtDeviceInfo = 0x9202
const OC_SONY_GetDevicePropDesc = 0x9203
const OC_SONY_GetDevicePropValue = 0x9204
const OC_SONY_SetControlDeviceA = 0x9205
const OC_SONY_GetControlDeviceDesc = 0x9206
const OC_SONY_SetControlDeviceB = 0x9207
const OC_SONY_GetAllDevicePropData = 0x9209
const OC_SONY_StartMovieRec = 0x920A
const OC_SONY_EndMovieRec = 0x920B
const OC_SONY_TerminateCapture = 0x920C
const OC_SONY_UnknownHandshakeRequest = 0x920D
const OC_MTP_GetObjectPropsSupported = 0x9801
const OC_MTP_GetObjectPropDesc = 0x9802
const OC_MTP_GetObjectPropValue = 0x9803
const OC_MTP_GetObjectPropList = 0x9805

var OC_names = map[int]string{0x1001: "GetDeviceInfo",
	0x1002: "OpenSession",
	0x1003: "CloseSession",
	0x1004: "GetStorageIDs",
	0x1005: "GetStorageInfo",
	0x1006: "GetNumObjects",
	0x1007: "GetObjectHandles",
	0x1008: "GetObjectInfo",
	0x1009: "GetObject",
	0x100A: "GetThumb",
	0x100B: "DeleteObject",
	0x100C: "SendObjectInfo",
	0x100D: "SendObject",
	0x100E: "InitiateCapture",
	0x100F: "FormatStore",
	0x1010: "ResetDevice",
	0x1011: "SelfTest",
	0x1012: "SetObjectProtection",
	0x1013: "PowerDown",
	0x1014: "GetDevicePropDesc",
	0x1015: "GetDevicePropValue",
	0x1016: "SetDevicePropValue",
	0x1017: "ResetDevicePropValue",
	0x1018: "TerminateOpenCapture",
	0x1019: "MoveObject",
	0x101A: "CopyObject",
	0x101B: "GetPartialObject",
	0x101C: "InitiateOpenCapture",
	0x9201: "SONY_SDIOConnect",
	0x9202: "SONY_SDIOGetExtDeviceInfo",
	0x9203: "SONY_GetDevicePropDesc",
	0x9204: "SONY_GetDevicePropValue",
	0x9205: "SONY_SetControlDeviceA",
	0x9206: "SONY_GetControlDeviceDesc",
	0x9207: "SONY_SetControlDeviceB",
	0x9209: "SONY_GetAllDevicePropData",
	0x920A: "SONY_StartMovieRec",
	0x920B: "SONY_EndMovieRec",
	0x920C: "SONY_TerminateCapture",
	0x920D: "SONY_UnknownHandshakeRequest",
	0x9801: "MTP_GetObjectPropsSupported",
	0x9802: "MTP_GetObjectPropDesc",
	0x9803: "MTP_GetObjectPropValue",
	0x9805: "MTP_GetObjectPropList",
}

const RC_Undefined = 0x2000
const RC_OK = 0x2001
const RC_GeneralError = 0x2002
const RC_SessionNotOpen = 0x2003
const RC_InvalidTransactionID = 0x2004
const RC_OperationNotSupported = 0x2005
const RC_ParameterNotSupported = 0x2006
const RC_IncompleteTransfer = 0x2007
const RC_InvalidStorageId = 0x2008
const RC_InvalidObjectHandle = 0x2009
const RC_DevicePropNotSupported = 0x200A
const RC_InvalidObjectFormatCode = 0x200B
const RC_StoreFull = 0x200C
const RC_ObjectWriteProtected = 0x200D
const RC_StoreReadOnly = 0x200E
const RC_AccessDenied = 0x200F
const RC_NoThumbnailPresent = 0x2010
const RC_SelfTestFailed = 0x2011
const RC_PartialDeletion = 0x2012
const RC_StoreNotAvailable = 0x2013
const RC_SpecificationByFormatUnsupported = 0x2014
const RC_NoValidObjectInfo = 0x2015
const RC_InvalidCodeFormat = 0x2016
const RC_UnknownVendorCode = 0x2017
const RC_CaptureAlreadyTerminated = 0x2018
const RC_DeviceBusy = 0x2019
const RC_InvalidParentObject = 0x201A
const RC_InvalidDevicePropFormat = 0x201B
const RC_InvalidDevicePropValue = 0x201C
const RC_InvalidParameter = 0x201D
const RC_SessionAlreadyOpened = 0x201E
const RC_TransactionCanceled = 0x201F
const RC_SpecificationOfDestinationUnsupported = 0x2020
const RC_InvalidEnumHandle = 0x2021
const RC_NoStreamEnabled = 0x2022
const RC_InvalidDataSet = 0x2023
const RC_EK_FilenameRequired = 0xA001
const RC_EK_FilenameConflicts = 0xA002
const RC_EK_FilenameInvalid = 0xA003
const RC_NIKON_InvalidStatus = 0xA004
const RC_NIKON_SetPropertyNotSupported = 0xA005
const RC_NIKON_WbResetError = 0xA006
const RC_NIKON_DustReferenceError = 0xA007
const RC_NIKON_ShutterSpeedBulb = 0xA008
const RC_NIKON_MirrorUpSequence = 0xA009
const RC_NIKON_CameraModeNotAdjustFNumber = 0xA00A
const RC_NIKON_NotLiveView = 0xA00B
const RC_NIKON_MfDriveStepEnd = 0xA00C
const RC_NIKON_MfDriveStepInsufficiency = 0xA00E
const RC_NIKON_AdvancedTransferCancel = 0xA022
const RC_SONY_AnotherSessionOpen = 0xA101
const RC_NIKON_NotReady = 0xA102
const RC_NIKON_CannotMakeObject = 0xA104
const RC_NIKON_MemoryStatusNotReady = 0xA106
const RC_MTP_InvalidWFCSyntax = 0xA121
const RC_MTP_WFCVersionNotSupported = 0xA122
const RC_MTP_InvalidMediaSessionID = 0xA170
const RC_MTP_MediaSessionLimitReached = 0xA171
const RC_MTP_NoMoreData = 0xA172
const RC_MTP_Undefined = 0xA800
const RC_MTP_InvalidObjectPropCode = 0xA801
const RC_MTP_InvalidObjectPropFormat = 0xA802
const RC_MTP_InvalidObjectPropValue = 0xA803
const RC_MTP_InvalidObjectReference = 0xA804
const RC_MTP_InvalidDataset = 0xA806
const RC_MTP_SpecificationByGroupUnsupported = 0xA807
const RC_MTP_SpecificationByDepthUnsupported = 0xA808
const RC_MTP_ObjectTooLarge = 0xA809
const RC_MTP_ObjectPropNotSupported = 0xA80A

var RC_names = map[int]string{0x2000: "Undefined",
	0x2001: "OK",
	0x2002: "GeneralError",
	0x2003: "SessionNotOpen",
	0x2004: "InvalidTransactionID",
	0x2005: "OperationNotSupported",
	0x2006: "ParameterNotSupported",
	0x2007: "IncompleteTransfer",
	0x2008: "InvalidStorageId",
	0x2009: "InvalidObjectHandle",
	0x200A: "DevicePropNotSupported",
	0x200B: "InvalidObjectFormatCode",
	0x200C: "StoreFull",
	0x200D: "ObjectWriteProtected",
	0x200E: "StoreReadOnly",
	0x200F: "AccessDenied",
	0x2010: "NoThumbnailPresent",
	0x2011: "SelfTestFailed",
	0x2012: "PartialDeletion",
	0x2013: "StoreNotAvailable",
	0x2014: "SpecificationByFormatUnsupported",
	0x2015: "NoValidObjectInfo",
	0x2016: "InvalidCodeFormat",
	0x2017: "UnknownVendorCode",
	0x2018: "CaptureAlreadyTerminated",
	0x2019: "DeviceBusy",
	0x201A: "InvalidParentObject",
	0x201B: "InvalidDevicePropFormat",
	0x201C: "InvalidDevicePropValue",
	0x201D: "InvalidParameter",
	0x201E: "SessionAlreadyOpened",
	0x201F: "TransactionCanceled",
	0x2020: "SpecificationOfDestinationUnsupported",
	0x2021: "InvalidEnumHandle",
	0x2022: "NoStreamEnabled",
	0x2023: "InvalidDataSet",
	0xA001: "EK_FilenameRequired",
	0xA002: "EK_FilenameConflicts",
	0xA003: "EK_FilenameInvalid",
	0xA004: "NIKON_InvalidStatus",
	0xA005: "NIKON_SetPropertyNotSupported",
	0xA006: "NIKON_WbResetError",
	0xA007: "NIKON_DustReferenceError",
	0xA008: "NIKON_ShutterSpeedBulb",
	0xA009: "NIKON_MirrorUpSequence",
	0xA00A: "NIKON_CameraModeNotAdjustFNumber",
	0xA00B: "NIKON_NotLiveView",
	0xA00C: "NIKON_MfDriveStepEnd",
	0xA00E: "NIKON_MfDriveStepInsufficiency",
	0xA022: "NIKON_AdvancedTransferCancel",
	0xA101: "SONY_AnotherSessionOpen",
	0xA102: "NIKON_NotReady",
	0xA104: "NIKON_CannotMakeObject",
	0xA106: "NIKON_MemoryStatusNotReady",
	0xA121: "MTP_InvalidWFCSyntax",
	0xA122: "MTP_WFCVersionNotSupported",
	0xA170: "MTP_InvalidMediaSessionID",
	0xA171: "MTP_MediaSessionLimitReached",
	0xA172: "MTP_NoMoreData",
	0xA800: "MTP_Undefined",
	0xA801: "MTP_InvalidObjectPropCode",
	0xA802: "MTP_InvalidObjectPropFormat",
	0xA803: "MTP_InvalidObjectPropValue",
	0xA804: "MTP_InvalidObjectReference",
	0xA806: "MTP_InvalidDataset",
	0xA807: "MTP_SpecificationByGroupUnsupported",
	0xA808: "MTP_SpecificationByDepthUnsupported",
	0xA809: "MTP_ObjectTooLarge",
	0xA80A: "MTP_ObjectPropNotSupported",
}

const EC_Undefined = 0x4000
const EC_CancelTransaction = 0x4001
const EC_ObjectAdded = 0x4002
const EC_ObjectRemoved = 0x4003
const EC_StoreAdded = 0x4004
const EC_StoreRemoved = 0x4005
const EC_DevicePropChanged = 0x4006
const EC_ObjectInfoChanged = 0x4007
const EC_DeviceInfoChanged = 0x4008
const EC_RequestObjectTransfer = 0x4009
const EC_StoreFull = 0x400A
const EC_DeviceReset = 0x400B
const EC_StorageInfoChanged = 0x400C
const EC_CaptureComplete = 0x400D
const EC_UnreportedStatus = 0x400E
const EC_SONY_ObjectAdded = 0xC201
const EC_SONY_ObjectRemoved = 0xC202
const EC_SONY_PropertyChanged = 0xC203
const EC_SONY_Unknown1 = 0xC204
const EC_SONY_Unknown2 = 0xC205
const EC_SONY_Unknown3 = 0xC206
const EC_SONY_Unknown4 = 0xC207

var EC_names = map[int]string{0x4000: "Undefined",
	0x4001: "CancelTransaction",
	0x4002: "ObjectAdded",
	0x4003: "ObjectRemoved",
	0x4004: "StoreAdded",
	0x4005: "StoreRemoved",
	0x4006: "DevicePropChanged",
	0x4007: "ObjectInfoChanged",
	0x4008: "DeviceInfoChanged",
	0x4009: "RequestObjectTransfer",
	0x400A: "StoreFull",
	0x400B: "DeviceReset",
	0x400C: "StorageInfoChanged",
	0x400D: "CaptureComplete",
	0x400E: "UnreportedStatus",
	0xC201: "SONY_ObjectAdded",
	0xC202: "SONY_ObjectRemoved",
	0xC203: "SONY_PropertyChanged",
	0xC204: "SONY_Unknown1",
	0xC205: "SONY_Unknown2",
	0xC206: "SONY_Unknown3",
	0xC207: "SONY_Unknown4",
}

const DPC_Undefined = 0x5000
const DPC_BatteryLevel = 0x5001
const DPC_FunctionalMode = 0x5002
const DPC_ImageSize = 0x5003
const DPC_CompressionSetting = 0x5004
const DPC_WhiteBalance = 0x5005
const DPC_RGBGain = 0x5006
const DPC_FNumber = 0x5007
const DPC_FocalLength = 0x5008
const DPC_FocusDistance = 0x5009
const DPC_FocusMode = 0x500A
const DPC_ExposureMeteringMode = 0x500B
const DPC_FlashMode = 0x500C
const DPC_ExposureTime = 0x500D
const DPC_ExposureProgramMode = 0x500E
const DPC_ExposureIndex = 0x500F
const DPC_ExposureBiasCompensation = 0x5010
const DPC_DateTime = 0x5011
const DPC_CaptureDelay = 0x5012
const DPC_StillCaptureMode = 0x5013
const DPC_Contrast = 0x5014
const DPC_Sharpness = 0x5015
const DPC_DigitalZoom = 0x5016
const DPC_EffectMode = 0x5017
const DPC_BurstNumber = 0x5018
const DPC_BurstInterval = 0x5019
const DPC_TimelapseNumber = 0x501A
const DPC_TimelapseInterval = 0x501B
const DPC_FocusMeteringMode = 0x501C
const DPC_UploadURL = 0x501D
const DPC_Artist = 0x501E
const DPC_CopyrightInfo = 0x501F
const DPC_SONY_DPCCompensation = 0xD200
const DPC_SONY_DRangeOptimize = 0xD201
const DPC_SONY_ImageSize = 0xD203
const DPC_SONY_ShutterSpeed = 0xD20D
const DPC_SONY_Unknown = 0xD20E
const DPC_SONY_ColorTemp = 0xD20F
const DPC_SONY_CCFilter = 0xD210
const DPC_SONY_AspectRatio = 0xD211
const DPC_SONY_FocusFound = 0xD213
const DPC_SONY_ObjectInMemory = 0xD215
const DPC_SONY_ExposeIndex = 0xD216
const DPC_SONY_BatteryLevel = 0xD218
const DPC_SONY_PictureEffect = 0xD21B
const DPC_SONY_ABFilter = 0xD21C
const DPC_SONY_ISO = 0xD21E
const DPC_SONY_ExposureSettingsLockStatus = 0xD22A
const DPC_SONY_MovieFormat = 0xD241
const DPC_SONY_MovieQuality = 0xD242
const DPC_SONY_StorageState = 0xD248
const DPC_SONY_RemainingShots = 0xD249
const DPC_SONY_RemainingCaptureTime = 0xD24A
const DPC_SONY_StillQuality = 0xD252
const DPC_SONY_StillFormat = 0xD253
const DPC_SONY_ExposureProgramModeControl = 0xD25A
const DPC_SONY_ZoomPosition = 0xD25D
const DPC_SONY_RecordingDuration = 0xD261
const DPC_SONY_LiveViewQuality = 0xD26A
const DPC_SONY_LiveViewURL = 0xD278
const DPC_SONY_AutoFocus = 0xD2C1
const DPC_SONY_Capture = 0xD2C2
const DPC_SONY_StillImage = 0xD2C7
const DPC_SONY_Movie = 0xD2C8
const DPC_SONY_ExposureSettingsLock = 0xD2D5
const DPC_SONY_PerformZoom = 0xD2DD

var DPC_names = map[int]string{0x5000: "Undefined",
	0x5001: "BatteryLevel",
	0x5002: "FunctionalMode",
	0x5003: "ImageSize",
	0x5004: "CompressionSetting",
	0x5005: "WhiteBalance",
	0x5006: "RGBGain",
	0x5007: "FNumber",
	0x5008: "FocalLength",
	0x5009: "FocusDistance",
	0x500A: "FocusMode",
	0x500B: "ExposureMeteringMode",
	0x500C: "FlashMode",
	0x500D: "ExposureTime",
	0x500E: "ExposureProgramMode",
	0x500F: "ExposureIndex",
	0x5010: "ExposureBiasCompensation",
	0x5011: "DateTime",
	0x5012: "CaptureDelay",
	0x5013: "StillCaptureMode",
	0x5014: "Contrast",
	0x5015: "Sharpness",
	0x5016: "DigitalZoom",
	0x5017: "EffectMode",
	0x5018: "BurstNumber",
	0x5019: "BurstInterval",
	0x501A: "TimelapseNumber",
	0x501B: "TimelapseInterval",
	0x501C: "FocusMeteringMode",
	0x501D: "UploadURL",
	0x501E: "Artist",
	0x501F: "CopyrightInfo",
	0xD200: "SONY_DPCCompensation",
	0xD201: "SONY_DRangeOptimize",
	0xD203: "SONY_ImageSize",
	0xD20D: "SONY_ShutterSpeed",
	0xD20E: "SONY_Unknown",
	0xD20F: "SONY_ColorTemp",
	0xD210: "SONY_CCFilter",
	0xD211: "SONY_AspectRatio",
	0xD213: "SONY_FocusFound",
	0xD215: "SONY_ObjectInMemory",
	0xD216: "SONY_ExposeIndex",
	0xD218: "SONY_BatteryLevel",
	0xD21B: "SONY_PictureEffect",
	0xD21C: "SONY_ABFilter",
	0xD21E: "SONY_ISO",
	0xD22A: "SONY_ExposureSettingsLockStatus",
	0xD241: "SONY_MovieFormat",
	0xD242: "SONY_MovieQuality",
	0xD248: "SONY_StorageState",
	0xD249: "SONY_RemainingShots",
	0xD24A: "SONY_RemainingCaptureTime",
	0xD252: "SONY_StillQuality",
	0xD253: "SONY_StillFormat",
	0xD25A: "SONY_ExposureProgramModeControl",
	0xD25D: "SONY_ZoomPosition",
	0xD261: "SONY_RecordingDuration",
	0xD26A: "SONY_LiveViewQuality",
	0xD278: "SONY_LiveViewURL",
	0xD2C1: "SONY_AutoFocus",
	0xD2C2: "SONY_Capture",
	0xD2C7: "SONY_StillImage",
	0xD2C8: "SONY_Movie",
	0xD2D5: "SONY_ExposureSettingsLock",
	0xD2DD: "SONY_PerformZoom",
}

const DTC_UNDEF = 0x0000
const DTC_INT8 = 0x0001
const DTC_UINT8 = 0x0002
const DTC_INT16 = 0x0003
const DTC_UINT16 = 0x0004
const DTC_INT32 = 0x0005
const DTC_UINT32 = 0x0006
const DTC_INT64 = 0x0007
const DTC_UINT64 = 0x0008
const DTC_INT128 = 0x0009
const DTC_UINT128 = 0x000A
const DTC_AINT8 = 0x4001
const DTC_AUINT8 = 0x4002
const DTC_AINT16 = 0x4003
const DTC_AUINT16 = 0x4004
const DTC_AINT32 = 0x4005
const DTC_AUINT32 = 0x4006
const DTC_AINT64 = 0x4007
const DTC_AUINT64 = 0x4008
const DTC_SONY_U8STR = 0xF1F1
const DTC_STR = 0xFFFF

var DTC_names = map[int]string{0x0000: "UNDEF",
	0x0001: "INT8",
	0x0002: "UINT8",
	0x0003: "INT16",
	0x0004: "UINT16",
	0x0005: "INT32",
	0x0006: "UINT32",
	0x0007: "INT64",
	0x0008: "UINT64",
	0x0009: "INT128",
	0x000A: "UINT128",
	0x4001: "AINT8",
	0x4002: "AUINT8",
	0x4003: "AINT16",
	0x4004: "AUINT16",
	0x4005: "AINT32",
	0x4006: "AUINT32",
	0x4007: "AINT64",
	0x4008: "AUINT64",
	0xF1F1: "SONY_U8STR",
	0xFFFF: "STR",
}

const DPFF_None = 0x00
const DPFF_Range = 0x01
const DPFF_Enumeration = 0x02

var DPFF_names = map[int]string{0x00: "None",
	0x01: "Range",
	0x02: "Enumeration",
}

const DPGS_Get = 0x00
const DPGS_GetSet = 0x01

var DPGS_names = map[int]string{0x00: "Get",
	0x01: "GetSet",
}

const DPGA_Unavailable = 0x00
const DPGA_GetSet = 0x01
const DPGA_Get = 0x02

var DPGA_names = map[int]string{0x00: "Unavailable",
	0x01: "GetSet",
	0x02: "Get",
}

const DP_NoDataOrDataIn = 0x00000001
const DP_DataOut = 0x00000002

var DP_names = map[int]string{0x00000001: "NoDataOrDataIn",
	0x00000002: "DataOut",
}
