package s1ap

// ProtocolIE-ID values of the IEs carried by the modelled messages.
const (
	ID_MME_UE_S1AP_ID                         = 0
	ID_HANDOVER_TYPE                          = 1
	ID_CAUSE                                  = 2
	ID_TARGET_ID                              = 4
	ID_ENB_UE_S1AP_ID                         = 8
	ID_E_RAB_TO_BE_SETUP_LIST_CTXT_SU_REQ     = 24
	ID_NAS_PDU                                = 26
	ID_E_RAB_ITEM                             = 35
	ID_UE_PAGING_ID                           = 43
	ID_PAGING_DRX                             = 44
	ID_TAI_LIST                               = 46
	ID_TAI_ITEM                               = 47
	ID_E_RAB_FAILED_TO_SETUP_LIST_CTXT_SU_RES = 48
	ID_E_RAB_SETUP_ITEM_CTXT_SU_RES           = 50
	ID_E_RAB_SETUP_LIST_CTXT_SU_RES           = 51
	ID_E_RAB_TO_BE_SETUP_ITEM_CTXT_SU_REQ     = 52
	ID_CRITICALITY_DIAGNOSTICS                = 58
	ID_GLOBAL_ENB_ID                          = 59
	ID_ENB_NAME                               = 60
	ID_MME_NAME                               = 61
	ID_SUPPORTED_TAS                          = 64
	ID_TIME_TO_WAIT                           = 65
	ID_UE_AGGREGATE_MAXIMUM_BITRATE           = 66
	ID_TAI                                    = 67
	ID_SECURITY_KEY                           = 73
	ID_DIRECT_FORWARDING_PATH_AVAILABILITY    = 79
	ID_UE_IDENTITY_INDEX_VALUE                = 80
	ID_RELATIVE_MME_CAPACITY                  = 87
	ID_S_TMSI                                 = 96
	ID_UE_S1AP_IDS                            = 99
	ID_EUTRAN_CGI                             = 100
	ID_SOURCE_TO_TARGET_TRANSPARENT_CONTAINER = 104
	ID_SERVED_GUMMEIS                         = 105
	ID_SUBSCRIBER_PROFILE_ID_FOR_RFP          = 106
	ID_UE_SECURITY_CAPABILITIES               = 107
	ID_CN_DOMAIN                              = 109
	ID_TARGET_TO_SOURCE_TRANSPARENT_CONTAINER = 123
	ID_CSG_ID                                 = 127
	ID_RRC_ESTABLISHMENT_CAUSE                = 134
	ID_DEFAULT_PAGING_DRX                     = 137
	ID_GW_CONTEXT_RELEASE_INDICATION          = 164
)

// ProcedureCode values of the modelled elementary procedures.
const (
	PROCEDURE_HANDOVER_PREPARATION       ProcedureCode = 0
	PROCEDURE_HANDOVER_CANCEL            ProcedureCode = 4
	PROCEDURE_INITIAL_CONTEXT_SETUP      ProcedureCode = 9
	PROCEDURE_PAGING                     ProcedureCode = 10
	PROCEDURE_DOWNLINK_NAS_TRANSPORT     ProcedureCode = 11
	PROCEDURE_INITIAL_UE_MESSAGE         ProcedureCode = 12
	PROCEDURE_UPLINK_NAS_TRANSPORT       ProcedureCode = 13
	PROCEDURE_ERROR_INDICATION           ProcedureCode = 15
	PROCEDURE_S1_SETUP                   ProcedureCode = 17
	PROCEDURE_UE_CONTEXT_RELEASE_REQUEST ProcedureCode = 18
	PROCEDURE_UE_CONTEXT_RELEASE         ProcedureCode = 23
)

// Upper bounds used by the modelled IEs.
const (
	MAX_NOOF_E_RABS            = 256
	MAX_NOOF_TACS              = 256
	MAX_NOOF_BPLMNS            = 6
	MAX_NOOF_RATS              = 8
	MAX_NOOF_PLMNS_PER_MME     = 32
	MAX_NOOF_GROUP_IDS         = 65535
	MAX_NOOF_MMECS             = 256
	MAX_NOOF_ERRORS            = 256
	MAX_BIT_RATE               = 10000000000
	MAX_NAME_LENGTH            = 150
	MAX_TRANSPORT_ADDRESS_BITS = 160
	MAX_ENB_UE_S1AP_ID         = 16777215
	MAX_MME_UE_S1AP_ID         = 4294967295
	MAX_SUBSCRIBER_PROFILE_ID  = 256
	MAX_RELATIVE_MME_CAPACITY  = 255
	MAX_PROCEDURE_CODE         = 255
	MAX_PROTOCOL_IE_ID         = 65535
	MAX_E_RAB_ID               = 15
	MAX_PRIORITY_LEVEL         = 15
	MAX_QCI                    = 255
	SECURITY_KEY_BITS          = 256
	ALGORITHM_BITS             = 16
	CELL_IDENTITY_BITS         = 28
	CSG_ID_BITS                = 27
	MACRO_ENB_ID_BITS          = 20
	HOME_ENB_ID_BITS           = 28
	SHORT_MACRO_ENB_ID_BITS    = 18
	LONG_MACRO_ENB_ID_BITS     = 21
	RNC_ID_MAX                 = 4095
	EXTENDED_RNC_ID_MIN        = 4096
	EXTENDED_RNC_ID_MAX        = 65535
	MAX_NOOF_TAIS              = 256
	UE_IDENTITY_INDEX_BITS     = 10
	IMSI_MIN_LENGTH            = 3
	IMSI_MAX_LENGTH            = 8
)
