package bank

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/cowallet"
)

// Account is the balance of a single address.
type Account struct {
	Balance uint64 `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

type accountPB Account

func (m *accountPB) Reset()         { *m = accountPB{} }
func (m *accountPB) String() string { return proto.CompactTextString(m) }
func (*accountPB) ProtoMessage()    {}

func (a *Account) Marshal() ([]byte, error) {
	return proto.Marshal((*accountPB)(a))
}

func (a *Account) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*accountPB)(a))
}

// SendMsg moves Amount from Source to Destination.
type SendMsg struct {
	Source      cowallet.Address `protobuf:"bytes,1,opt,name=source,proto3,casttype=github.com/iov-one/cowallet.Address" json:"source,omitempty"`
	Destination cowallet.Address `protobuf:"bytes,2,opt,name=destination,proto3,casttype=github.com/iov-one/cowallet.Address" json:"destination,omitempty"`
	Amount      uint64 `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Memo        string `protobuf:"bytes,4,opt,name=memo,proto3" json:"memo,omitempty"`
}

type sendMsgPB SendMsg

func (m *sendMsgPB) Reset()         { *m = sendMsgPB{} }
func (m *sendMsgPB) String() string { return proto.CompactTextString(m) }
func (*sendMsgPB) ProtoMessage()    {}

func (m *SendMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*sendMsgPB)(m))
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*sendMsgPB)(m))
}
