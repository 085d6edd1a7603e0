package vesting

import (
	"github.com/golang/protobuf/proto"
	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric-protos-go/peer"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// TransactionContext is the part of the chaincode stub and client identity
// the vesting contract relies on.
//
//go:generate counterfeiter -o mocks/transactioncontext.go -fake-name TransactionContext . TransactionContext
type TransactionContext interface {
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
	GetClientIdentity() cid.ClientIdentity
	GetSignedProposal() (*peer.SignedProposal, error)
	GetTxTimestamp() (*timestamppb.Timestamp, error)
	GetChannelID() string
	SetEvent(name string, payload []byte) error
	InvokeChaincode(chaincodeName string, args [][]byte, channel string) peer.Response
}

//go:generate counterfeiter -o mocks/clientidentity.go -fake-name ClientIdentity . clientIdentity
type clientIdentity interface {
	cid.ClientIdentity
}

type stubContext struct {
	shim.ChaincodeStubInterface
	identity cid.ClientIdentity
}

func (c stubContext) GetClientIdentity() cid.ClientIdentity {
	return c.identity
}

// FromContractContext exposes a contractapi transaction context as a
// TransactionContext.
func FromContractContext(ctx contractapi.TransactionContextInterface) TransactionContext {
	return stubContext{ChaincodeStubInterface: ctx.GetStub(), identity: ctx.GetClientIdentity()}
}

// Now returns the transaction time in whole seconds.
func Now(ctx TransactionContext) (uint64, error) {
	ts, err := ctx.GetTxTimestamp()
	if err != nil {
		return 0, NewCustomError(MissingTxTimestamp, "failed to get transaction timestamp", err)
	}
	if ts.GetSeconds() < 0 {
		return 0, nil
	}
	return uint64(ts.GetSeconds()), nil
}

// InvokedChaincode returns the name of the chaincode the client proposal
// targets. Chaincode-to-chaincode calls share the proposal, so inside a
// transfer filter callback this is the token chaincode.
func InvokedChaincode(ctx TransactionContext) (string, error) {
	signed, err := ctx.GetSignedProposal()
	if err != nil {
		return "", NewCustomError(InvalidCaller, "failed to get signed proposal", err)
	}
	if signed == nil {
		return "", NewCustomError(InvalidCaller, "signed proposal is missing", nil)
	}

	proposal := &peer.Proposal{}
	if err := proto.Unmarshal(signed.ProposalBytes, proposal); err != nil {
		return "", NewCustomError(InvalidCaller, "failed to unmarshal proposal", err)
	}
	payload := &peer.ChaincodeProposalPayload{}
	if err := proto.Unmarshal(proposal.Payload, payload); err != nil {
		return "", NewCustomError(InvalidCaller, "failed to unmarshal proposal payload", err)
	}
	spec := &peer.ChaincodeInvocationSpec{}
	if err := proto.Unmarshal(payload.Input, spec); err != nil {
		return "", NewCustomError(InvalidCaller, "failed to unmarshal invocation spec", err)
	}

	name := spec.GetChaincodeSpec().GetChaincodeId().GetName()
	if name == "" {
		return "", NewCustomError(InvalidCaller, "proposal names no chaincode", nil)
	}
	return name, nil
}
