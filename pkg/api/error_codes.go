package api

import (
	"encoding/json"
	"fmt"
)

// ErrorCode is a numeric error code sent by the server inside an error envelope.
// The set is closed: a code outside it fails to decode.
type ErrorCode int

const (
	CodeResponseSerialization            ErrorCode = 3000
	CodeUnprocessableInput               ErrorCode = 3001
	CodeServerMaintenance                ErrorCode = 3002
	CodeServerResetInProgress            ErrorCode = 3003
	CodeCooldownConflict                 ErrorCode = 4000
	CodeWaypointNoAccess                 ErrorCode = 4001
	CodeTokenEmpty                       ErrorCode = 4100
	CodeTokenMissingSubject              ErrorCode = 4101
	CodeTokenInvalidSubject              ErrorCode = 4102
	CodeMissingTokenRequest              ErrorCode = 4103
	CodeInvalidTokenRequest              ErrorCode = 4104
	CodeInvalidTokenSubject              ErrorCode = 4105
	CodeAccountNotExists                 ErrorCode = 4106
	CodeAgentNotExists                   ErrorCode = 4107
	CodeAccountHasNoAgent                ErrorCode = 4108
	CodeRegisterAgentExists              ErrorCode = 4109
	CodeRegisterAgentSymbolReserved      ErrorCode = 4110
	CodeRegisterAgentConflictSymbol      ErrorCode = 4111
	CodeRegisterAgentNoStartingLocation  ErrorCode = 4112
	CodeTokenResetDateMismatch           ErrorCode = 4113
	CodeTokenVersionMismatch             ErrorCode = 4114
	CodeNavigateInTransit                ErrorCode = 4200
	CodeNavigateInvalidDestination       ErrorCode = 4201
	CodeNavigateOutsideSystem            ErrorCode = 4202
	CodeNavigateInsufficientFuel         ErrorCode = 4203
	CodeNavigateSameDestination          ErrorCode = 4204
	CodeShipExtractInvalidWaypoint       ErrorCode = 4205
	CodeShipExtractPermission            ErrorCode = 4206
	CodeShipJumpNoSystem                 ErrorCode = 4207
	CodeShipJumpSameSystem               ErrorCode = 4208
	CodeShipJumpMissingModule            ErrorCode = 4210
	CodeShipJumpNoValidWaypoint          ErrorCode = 4211
	CodeShipJumpMissingAntimatter        ErrorCode = 4212
	CodeShipInTransit                    ErrorCode = 4214
	CodeShipMissingSensorArrays          ErrorCode = 4215
	CodePurchaseShipCredits              ErrorCode = 4216
	CodeShipCargoExceedsLimit            ErrorCode = 4217
	CodeShipCargoMissing                 ErrorCode = 4218
	CodeShipCargoUnitCount               ErrorCode = 4219
	CodeShipSurveyVerification           ErrorCode = 4220
	CodeShipSurveyExpiration             ErrorCode = 4221
	CodeShipSurveyWaypointType           ErrorCode = 4222
	CodeShipSurveyOrbit                  ErrorCode = 4223
	CodeShipSurveyExhausted              ErrorCode = 4224
	CodeShipRefuelDocked                 ErrorCode = 4225
	CodeShipRefuelInvalidWaypoint        ErrorCode = 4226
	CodeShipMissingMounts                ErrorCode = 4227
	CodeShipCargoFull                    ErrorCode = 4228
	CodeShipJumpFromGateToGate           ErrorCode = 4229
	CodeWaypointCharted                  ErrorCode = 4230
	CodeShipTransferShipNotFound         ErrorCode = 4231
	CodeShipTransferAgentConflict        ErrorCode = 4232
	CodeShipTransferSameShipConflict     ErrorCode = 4233
	CodeShipTransferLocationConflict     ErrorCode = 4234
	CodeWarpInsideSystem                 ErrorCode = 4235
	CodeShipNotInOrbit                   ErrorCode = 4236
	CodeShipInvalidRefineryGood          ErrorCode = 4237
	CodeShipInvalidRefineryType          ErrorCode = 4238
	CodeShipMissingRefinery              ErrorCode = 4239
	CodeShipMissingSurveyor              ErrorCode = 4240
	CodeShipMissingWarpDrive             ErrorCode = 4241
	CodeShipMissingMineralProcessor      ErrorCode = 4242
	CodeShipMissingMiningLasers          ErrorCode = 4243
	CodeShipNotDocked                    ErrorCode = 4244
	CodePurchaseShipNotPresent           ErrorCode = 4245
	CodeShipMountNoShipyard              ErrorCode = 4246
	CodeShipMissingMount                 ErrorCode = 4247
	CodeShipMountInsufficientCredits     ErrorCode = 4248
	CodeShipMissingPower                 ErrorCode = 4249
	CodeShipMissingSlots                 ErrorCode = 4250
	CodeShipMissingMountsForModule       ErrorCode = 4251
	CodeShipMissingCrew                  ErrorCode = 4252
	CodeShipExtractDestabilized          ErrorCode = 4253
	CodeShipJumpBlocked                  ErrorCode = 4254
	CodeShipJumpNoGate                   ErrorCode = 4255
	CodeShipModuleNoShipyard             ErrorCode = 4256
	CodeShipModuleNotInstalled           ErrorCode = 4257
	CodeShipModuleInsufficientCredits    ErrorCode = 4258
	CodeCantSlowDownWhileInTransit       ErrorCode = 4259
	CodeShipExtractInvalidExtractionType ErrorCode = 4260
	CodeShipRepairNoShipyard             ErrorCode = 4261
	CodeShipScrapNoShipyard              ErrorCode = 4262
	CodeShipRepairInsufficientCredits    ErrorCode = 4263
	CodeShipRepairInTransit              ErrorCode = 4264
	CodeShipMissingGasProcessor          ErrorCode = 4265
	CodeShipMissingGasSiphons            ErrorCode = 4266
	CodeShipSiphonInvalidWaypoint        ErrorCode = 4267
	CodeShipRefuelInsufficientCredits    ErrorCode = 4268
	CodeShipJumpGateUnderConstruction    ErrorCode = 4269
	CodeShipRefuelFromCargoNotSupported  ErrorCode = 4270
	CodeShipRefuelExceedsFuelCapacity    ErrorCode = 4271
	CodeAcceptContractNotAuthorized      ErrorCode = 4500
	CodeAcceptContractConflict           ErrorCode = 4501
	CodeFulfillContractDelivery          ErrorCode = 4502
	CodeContractDeadline                 ErrorCode = 4503
	CodeContractFulfilled                ErrorCode = 4504
	CodeContractNotAccepted              ErrorCode = 4505
	CodeContractNotAuthorized            ErrorCode = 4506
	CodeShipDeliverTerms                 ErrorCode = 4508
	CodeShipDeliverFulfilled             ErrorCode = 4509
	CodeShipDeliverInvalidLocation       ErrorCode = 4510
	CodeExistingContract                 ErrorCode = 4511
	CodeMarketTradeInsufficientCredits   ErrorCode = 4600
	CodeMarketTradeNoPurchase            ErrorCode = 4601
	CodeMarketTradeNotSold               ErrorCode = 4602
	CodeMarketNotFound                   ErrorCode = 4603
	CodeMarketTradeUnitLimit             ErrorCode = 4604
	CodeWaypointNoFaction                ErrorCode = 4700
	CodeConstructionMaterialNotRequired  ErrorCode = 4800
	CodeConstructionMaterialFulfilled    ErrorCode = 4801
	CodeShipConstructionInvalidLocation  ErrorCode = 4802
	CodeUnsupportedMediaType             ErrorCode = 5000
)

var errorCodeNames = map[ErrorCode]string{
	CodeResponseSerialization:           "responseSerializationError",
	CodeUnprocessableInput:              "unprocessableInputError",
	CodeServerMaintenance:               "serverMaintenanceError",
	CodeServerResetInProgress:           "serverResetInProgressError",
	CodeCooldownConflict:                "cooldownConflictError",
	CodeWaypointNoAccess:                "waypointNoAccessError",
	CodeTokenEmpty:                      "tokenEmptyError",
	CodeTokenMissingSubject:             "tokenMissingSubjectError",
	CodeTokenInvalidSubject:             "tokenInvalidSubjectError",
	CodeMissingTokenRequest:             "missingTokenRequestError",
	CodeInvalidTokenRequest:             "invalidTokenRequestError",
	CodeInvalidTokenSubject:             "invalidTokenSubjectError",
	CodeAccountNotExists:                "accountNotExistsError",
	CodeAgentNotExists:                  "agentNotExistsError",
	CodeAccountHasNoAgent:               "accountHasNoAgentError",
	CodeRegisterAgentExists:             "registerAgentExistsError",
	CodeRegisterAgentSymbolReserved:     "registerAgentSymbolReservedError",
	CodeRegisterAgentConflictSymbol:     "registerAgentConflictSymbolError",
	CodeRegisterAgentNoStartingLocation: "registerAgentNoStartingLocationError",
	CodeTokenResetDateMismatch:          "tokenResetDateMismatchError",
	CodeTokenVersionMismatch:            "tokenVersionMismatchError",
	CodeNavigateInTransit:               "navigateInTransitError",
	CodeNavigateInvalidDestination:      "navigateInvalidDestinationError",
	CodeNavigateOutsideSystem:           "navigateOutsideSystemError",
	CodeNavigateInsufficientFuel:        "navigateInsufficientFuelError",
	CodeNavigateSameDestination:         "navigateSameDestinationError",
	CodeShipExtractInvalidWaypoint:      "shipExtractInvalidWaypointError",
	CodeShipExtractPermission:           "shipExtractPermissionError",
	CodeShipJumpNoSystem:                "shipJumpNoSystemError",
	CodeShipJumpSameSystem:              "shipJumpSameSystemError",
	CodeShipJumpMissingModule:           "shipJumpMissingModuleError",
	CodeShipJumpNoValidWaypoint:         "shipJumpNoValidWaypointError",
	CodeShipJumpMissingAntimatter:       "shipJumpMissingAntimatterError",
	CodeShipInTransit:                   "shipInTransitError",
	CodeShipMissingSensorArrays:         "shipMissingSensorArraysError",
	CodePurchaseShipCredits:             "purchaseShipCreditsError",
	CodeShipCargoExceedsLimit:           "shipCargoExceedsLimitError",
	CodeShipCargoMissing:                "shipCargoMissingError",
	CodeShipCargoUnitCount:              "shipCargoUnitCountError",
	CodeShipSurveyVerification:          "shipSurveyVerificationError",
	CodeShipSurveyExpiration:            "shipSurveyExpirationError",
	CodeShipSurveyWaypointType:          "shipSurveyWaypointTypeError",
	CodeShipSurveyOrbit:                 "shipSurveyOrbitError",
	CodeShipSurveyExhausted:             "shipSurveyExhaustedError",
	CodeShipRefuelDocked:                "shipRefuelDockedError",
	CodeShipRefuelInvalidWaypoint:       "shipRefuelInvalidWaypointError",
	CodeShipMissingMounts:               "shipMissingMountsError",
	CodeShipCargoFull:                   "shipCargoFullError",
	CodeShipJumpFromGateToGate:          "shipJumpFromGateToGateError",
	CodeWaypointCharted:                 "waypointChartedError",
	CodeShipTransferShipNotFound:        "shipTransferShipNotFound",
	CodeShipTransferAgentConflict:       "shipTransferAgentConflict",
	CodeShipTransferSameShipConflict:    "shipTransferSameShipConflict",
	CodeShipTransferLocationConflict:    "shipTransferLocationConflict",
	CodeWarpInsideSystem:                "warpInsideSystemError",
	CodeShipNotInOrbit:                  "shipNotInOrbitError",
	CodeShipInvalidRefineryGood:         "shipInvalidRefineryGoodError",
	CodeShipInvalidRefineryType:         "shipInvalidRefineryTypeError",
	CodeShipMissingRefinery:             "shipMissingRefineryError",
	CodeShipMissingSurveyor:             "shipMissingSurveyorError",
	CodeShipMissingWarpDrive:            "shipMissingWarpDriveError",
	CodeShipMissingMineralProcessor:     "shipMissingMineralProcessorError",
	CodeShipMissingMiningLasers:         "shipMissingMiningLasersError",
	CodeShipNotDocked:                   "shipNotDockedError",
	CodePurchaseShipNotPresent:          "purchaseShipNotPresentError",
	CodeShipMountNoShipyard:             "shipMountNoShipyardError",
	CodeShipMissingMount:                "shipMissingMountError",
	CodeShipMountInsufficientCredits:    "shipMountInsufficientCreditsError",
	CodeShipMissingPower:                "shipMissingPowerError",
	CodeShipMissingSlots:                "shipMissingSlotsError",
	CodeShipMissingMountsForModule:      "shipMissingMountsForModuleError",
	CodeShipMissingCrew:                 "shipMissingCrewError",
	CodeShipExtractDestabilized:         "shipExtractDestabilizedError",
	CodeShipJumpBlocked:                 "shipJumpBlockedError",
	CodeShipJumpNoGate:                  "shipJumpNoGateError",
	CodeShipModuleNoShipyard:            "shipModuleNoShipyardError",
	CodeShipModuleNotInstalled:          "shipModuleNotInstalledError",
	CodeShipModuleInsufficientCredits:   "shipModuleInsufficientCreditsError",
	CodeCantSlowDownWhileInTransit:      "cantSlowDownWhileInTransitError",
	CodeShipExtractInvalidExtractionType: "shipExtractInvalidExtractionTypeError",
	CodeShipRepairNoShipyard:            "shipRepairNoShipyardError",
	CodeShipScrapNoShipyard:             "shipScrapNoShipyardError",
	CodeShipRepairInsufficientCredits:   "shipRepairInsufficientCreditsError",
	CodeShipRepairInTransit:             "shipRepairInTransitError",
	CodeShipMissingGasProcessor:         "shipMissingGasProcessorError",
	CodeShipMissingGasSiphons:           "shipMissingGasSiphonsError",
	CodeShipSiphonInvalidWaypoint:       "shipSiphonInvalidWaypointError",
	CodeShipRefuelInsufficientCredits:   "shipRefuelInsufficientCreditsError",
	CodeShipJumpGateUnderConstruction:   "shipJumpGateUnderConstructionError",
	CodeShipRefuelFromCargoNotSupported: "shipRefuelFromCargoNotSupportedError",
	CodeShipRefuelExceedsFuelCapacity:   "shipRefuelExceedsFuelCapacityError",
	CodeAcceptContractNotAuthorized:     "acceptContractNotAuthorizedError",
	CodeAcceptContractConflict:          "acceptContractConflictError",
	CodeFulfillContractDelivery:         "fulfillContractDeliveryError",
	CodeContractDeadline:                "contractDeadlineError",
	CodeContractFulfilled:               "contractFulfilledError",
	CodeContractNotAccepted:             "contractNotAcceptedError",
	CodeContractNotAuthorized:           "contractNotAuthorizedError",
	CodeShipDeliverTerms:                "shipDeliverTermsError",
	CodeShipDeliverFulfilled:            "shipDeliverFulfilledError",
	CodeShipDeliverInvalidLocation:      "shipDeliverInvalidLocationError",
	CodeExistingContract:                "existingContractError",
	CodeMarketTradeInsufficientCredits:  "marketTradeInsufficientCreditsError",
	CodeMarketTradeNoPurchase:           "marketTradeNoPurchaseError",
	CodeMarketTradeNotSold:              "marketTradeNotSoldError",
	CodeMarketNotFound:                  "marketNotFoundError",
	CodeMarketTradeUnitLimit:            "marketTradeUnitLimitError",
	CodeWaypointNoFaction:               "waypointNoFactionError",
	CodeConstructionMaterialNotRequired: "constructionMaterialNotRequired",
	CodeConstructionMaterialFulfilled:   "constructionMaterialFulfilled",
	CodeShipConstructionInvalidLocation: "shipConstructionInvalidLocationError",
	CodeUnsupportedMediaType:            "unsupportedMediaTypeError",
}

// String returns the server's name for the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// IsKnown reports whether c belongs to the documented set
func (c ErrorCode) IsKnown() bool {
	_, ok := errorCodeNames[c]
	return ok
}

// UnknownErrorCodeError is returned when an error envelope carries a code
// outside the documented set
type UnknownErrorCodeError struct {
	Code int
}

func (e *UnknownErrorCodeError) Error() string {
	return fmt.Sprintf("unknown error code %d", e.Code)
}

// ParseErrorCode maps a raw integer onto the closed ErrorCode set
func ParseErrorCode(code int) (ErrorCode, error) {
	c := ErrorCode(code)
	if !c.IsKnown() {
		return 0, &UnknownErrorCodeError{Code: code}
	}
	return c, nil
}

// UnmarshalJSON rejects codes outside the known set
func (c *ErrorCode) UnmarshalJSON(data []byte) error {
	var raw int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error code must be an integer: %w", err)
	}
	parsed, err := ParseErrorCode(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
