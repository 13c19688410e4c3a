package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cowallet"
	"github.com/iov-one/cowallet/errors"
	"github.com/iov-one/cowallet/x/bank"
	"github.com/iov-one/cowallet/x/sigs"
	"github.com/iov-one/cowallet/x/wallet"
)

// Tx is the transaction accepted by walletd. Exactly one of the message
// fields must be set.
type Tx struct {
	Signatures                []*sigs.StdSignature              `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	SendMsg                   *bank.SendMsg                     `protobuf:"bytes,2,opt,name=send_msg,json=sendMsg,proto3" json:"send_msg,omitempty"`
	SubmitTransferRequestMsg  *wallet.SubmitTransferRequestMsg  `protobuf:"bytes,3,opt,name=submit_transfer_request_msg,json=submitTransferRequestMsg,proto3" json:"submit_transfer_request_msg,omitempty"`
	SupportTransferRequestMsg *wallet.SupportTransferRequestMsg `protobuf:"bytes,4,opt,name=support_transfer_request_msg,json=supportTransferRequestMsg,proto3" json:"support_transfer_request_msg,omitempty"`
	RevokeSupportMsg          *wallet.RevokeSupportMsg          `protobuf:"bytes,5,opt,name=revoke_support_msg,json=revokeSupportMsg,proto3" json:"revoke_support_msg,omitempty"`
	ExecuteTransferRequestMsg *wallet.ExecuteTransferRequestMsg `protobuf:"bytes,6,opt,name=execute_transfer_request_msg,json=executeTransferRequestMsg,proto3" json:"execute_transfer_request_msg,omitempty"`
}

type txPB Tx

func (m *txPB) Reset()         { *m = txPB{} }
func (m *txPB) String() string { return proto.CompactTextString(m) }
func (*txPB) ProtoMessage()    {}

func (tx *Tx) Marshal() ([]byte, error) {
	return proto.Marshal((*txPB)(tx))
}

func (tx *Tx) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*txPB)(tx))
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (cowallet.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ cowallet.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// NewTx wraps a message into a new, unsigned transaction.
func NewTx(msg cowallet.Msg) (*Tx, error) {
	var tx Tx
	switch m := msg.(type) {
	case *bank.SendMsg:
		tx.SendMsg = m
	case *wallet.SubmitTransferRequestMsg:
		tx.SubmitTransferRequestMsg = m
	case *wallet.SupportTransferRequestMsg:
		tx.SupportTransferRequestMsg = m
	case *wallet.RevokeSupportMsg:
		tx.RevokeSupportMsg = m
	case *wallet.ExecuteTransferRequestMsg:
		tx.ExecuteTransferRequestMsg = m
	default:
		return nil, errors.Wrapf(errors.ErrInvalidType, "unsupported message %T", msg)
	}
	return &tx, nil
}

// GetMsg returns the single message carried by the transaction.
func (tx *Tx) GetMsg() (cowallet.Msg, error) {
	var msgs []cowallet.Msg
	if tx.SendMsg != nil {
		msgs = append(msgs, tx.SendMsg)
	}
	if tx.SubmitTransferRequestMsg != nil {
		msgs = append(msgs, tx.SubmitTransferRequestMsg)
	}
	if tx.SupportTransferRequestMsg != nil {
		msgs = append(msgs, tx.SupportTransferRequestMsg)
	}
	if tx.RevokeSupportMsg != nil {
		msgs = append(msgs, tx.RevokeSupportMsg)
	}
	if tx.ExecuteTransferRequestMsg != nil {
		msgs = append(msgs, tx.ExecuteTransferRequestMsg)
	}

	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrInvalidMsg, "no message")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrInvalidMsg, "%d messages", len(msgs))
	}
}

// GetSignatures returns the signatures of all signers.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	signatures := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = signatures
	return bz, err
}
