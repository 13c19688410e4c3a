package wallet

import (
	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/errors"
)

const (
	pathSubmitMsg  = "wallet/submit"
	pathSupportMsg = "wallet/support"
	pathRevokeMsg  = "wallet/revoke"
	pathExecuteMsg = "wallet/execute"
)

var _ cowallet.Msg = (*SubmitTransferRequestMsg)(nil)

// Path returns the routing path for this message
func (SubmitTransferRequestMsg) Path() string {
	return pathSubmitMsg
}

// Validate makes sure that this is sensible. A zero amount is allowed.
func (m *SubmitTransferRequestMsg) Validate() error {
	return errors.AppendField(nil, "Target", m.Target.Validate())
}

var _ cowallet.Msg = (*SupportTransferRequestMsg)(nil)

func (SupportTransferRequestMsg) Path() string {
	return pathSupportMsg
}

func (m *SupportTransferRequestMsg) Validate() error {
	return validateRequestID(m.RequestID)
}

var _ cowallet.Msg = (*RevokeSupportMsg)(nil)

func (RevokeSupportMsg) Path() string {
	return pathRevokeMsg
}

func (m *RevokeSupportMsg) Validate() error {
	return validateRequestID(m.RequestID)
}

var _ cowallet.Msg = (*ExecuteTransferRequestMsg)(nil)

func (ExecuteTransferRequestMsg) Path() string {
	return pathExecuteMsg
}

func (m *ExecuteTransferRequestMsg) Validate() error {
	return validateRequestID(m.RequestID)
}

// Sequence ids start at one.
func validateRequestID(id uint64) error {
	if id == 0 {
		return errors.Field("RequestID", errors.ErrEmpty, "required")
	}
	return nil
}
