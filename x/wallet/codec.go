package wallet

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cowallet"
)

// Configuration is the wallet singleton holding the owner set.
type Configuration struct {
	Owners []cowallet.Address `protobuf:"bytes,1,rep,name=owners,proto3,casttype=github.com/iov-one/cowallet.Address" json:"owners"`
}

type configurationPB Configuration

func (m *configurationPB) Reset()         { *m = configurationPB{} }
func (m *configurationPB) String() string { return proto.CompactTextString(m) }
func (*configurationPB) ProtoMessage()    {}

func (c *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal((*configurationPB)(c))
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*configurationPB)(c))
}

// TransferRequest is a pending request to move funds out of the wallet.
type TransferRequest struct {
	Target     cowallet.Address   `protobuf:"bytes,1,opt,name=target,proto3,casttype=github.com/iov-one/cowallet.Address" json:"target"`
	Amount     uint64             `protobuf:"varint,2,opt,name=amount,proto3" json:"amount"`
	Supporters []cowallet.Address `protobuf:"bytes,3,rep,name=supporters,proto3,casttype=github.com/iov-one/cowallet.Address" json:"supporters"`
}

type transferRequestPB TransferRequest

func (m *transferRequestPB) Reset()         { *m = transferRequestPB{} }
func (m *transferRequestPB) String() string { return proto.CompactTextString(m) }
func (*transferRequestPB) ProtoMessage()    {}

func (r *TransferRequest) Marshal() ([]byte, error) {
	return proto.Marshal((*transferRequestPB)(r))
}

func (r *TransferRequest) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*transferRequestPB)(r))
}

// TransferInstruction is produced by a successful execution. The host is
// expected to move Amount from the wallet account to Target.
type TransferInstruction struct {
	RequestID uint64           `protobuf:"varint,1,opt,name=request_id,json=requestId,proto3" json:"request_id"`
	Target    cowallet.Address `protobuf:"bytes,2,opt,name=target,proto3,casttype=github.com/iov-one/cowallet.Address" json:"target"`
	Amount    uint64           `protobuf:"varint,3,opt,name=amount,proto3" json:"amount"`
}

type transferInstructionPB TransferInstruction

func (m *transferInstructionPB) Reset()         { *m = transferInstructionPB{} }
func (m *transferInstructionPB) String() string { return proto.CompactTextString(m) }
func (*transferInstructionPB) ProtoMessage()    {}

func (t *TransferInstruction) Marshal() ([]byte, error) {
	return proto.Marshal((*transferInstructionPB)(t))
}

func (t *TransferInstruction) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*transferInstructionPB)(t))
}

// SubmitTransferRequestMsg creates a new transfer request supported by the
// signer.
type SubmitTransferRequestMsg struct {
	Target cowallet.Address `protobuf:"bytes,1,opt,name=target,proto3,casttype=github.com/iov-one/cowallet.Address" json:"target"`
	Amount uint64           `protobuf:"varint,2,opt,name=amount,proto3" json:"amount"`
}

type submitTransferRequestMsgPB SubmitTransferRequestMsg

func (m *submitTransferRequestMsgPB) Reset()         { *m = submitTransferRequestMsgPB{} }
func (m *submitTransferRequestMsgPB) String() string { return proto.CompactTextString(m) }
func (*submitTransferRequestMsgPB) ProtoMessage()    {}

func (m *SubmitTransferRequestMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*submitTransferRequestMsgPB)(m))
}

func (m *SubmitTransferRequestMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*submitTransferRequestMsgPB)(m))
}

// SupportTransferRequestMsg adds the signer to the request supporters.
type SupportTransferRequestMsg struct {
	RequestID uint64 `protobuf:"varint,1,opt,name=request_id,json=requestId,proto3" json:"request_id"`
}

type supportTransferRequestMsgPB SupportTransferRequestMsg

func (m *supportTransferRequestMsgPB) Reset()         { *m = supportTransferRequestMsgPB{} }
func (m *supportTransferRequestMsgPB) String() string { return proto.CompactTextString(m) }
func (*supportTransferRequestMsgPB) ProtoMessage()    {}

func (m *SupportTransferRequestMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*supportTransferRequestMsgPB)(m))
}

func (m *SupportTransferRequestMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*supportTransferRequestMsgPB)(m))
}

// RevokeSupportMsg removes the signer from the request supporters.
type RevokeSupportMsg struct {
	RequestID uint64 `protobuf:"varint,1,opt,name=request_id,json=requestId,proto3" json:"request_id"`
}

type revokeSupportMsgPB RevokeSupportMsg

func (m *revokeSupportMsgPB) Reset()         { *m = revokeSupportMsgPB{} }
func (m *revokeSupportMsgPB) String() string { return proto.CompactTextString(m) }
func (*revokeSupportMsgPB) ProtoMessage()    {}

func (m *RevokeSupportMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*revokeSupportMsgPB)(m))
}

func (m *RevokeSupportMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*revokeSupportMsgPB)(m))
}

// ExecuteTransferRequestMsg executes a request supported by all owners.
type ExecuteTransferRequestMsg struct {
	RequestID uint64 `protobuf:"varint,1,opt,name=request_id,json=requestId,proto3" json:"request_id"`
}

type executeTransferRequestMsgPB ExecuteTransferRequestMsg

func (m *executeTransferRequestMsgPB) Reset()         { *m = executeTransferRequestMsgPB{} }
func (m *executeTransferRequestMsgPB) String() string { return proto.CompactTextString(m) }
func (*executeTransferRequestMsgPB) ProtoMessage()    {}

func (m *ExecuteTransferRequestMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*executeTransferRequestMsgPB)(m))
}

func (m *ExecuteTransferRequestMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*executeTransferRequestMsgPB)(m))
}
