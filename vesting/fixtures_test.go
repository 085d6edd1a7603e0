package vesting_test

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/cowlnetwork/cowl-vesting/vesting"
	"github.com/cowlnetwork/cowl-vesting/vesting/mocks"
	"github.com/golang/protobuf/proto"
	"github.com/holiman/uint256"
	"github.com/hyperledger/fabric-protos-go/peer"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	AdminAddress       = "0b87970433b22494faff1cc7a819e71bddc7880c"
	OutsiderAddress    = "9f2b4c6d8e0a1b3c5d7e9f1a2b3c4d5e6f7a8b9c"
	TreasuryAddress    = "1111111111111111111111111111111111111111"
	ContributorAddress = "2222222222222222222222222222222222222222"
	DevelopmentAddress = "3333333333333333333333333333333333333333"
	LiquidityAddress   = "4444444444444444444444444444444444444444"
	CommunityAddress   = "5555555555555555555555555555555555555555"
	StakingAddress     = "6666666666666666666666666666666666666666"

	VestingContractAddress = "klp-6b616c70627269646765-cc"
	TokenContractAddress   = "klp-636f776c746f6b656e-cc"

	AdminMSP  = "AdminOrgMSP"
	ChannelID = "kalp"

	StartTime uint64 = 1737374042
)

func SetUserID(transactionContext *mocks.TransactionContext, userID string) {
	SetCaller(transactionContext, userID, AdminMSP)
}

func SetCaller(transactionContext *mocks.TransactionContext, userID, mspID string) {
	completeId := fmt.Sprintf("x509::CN=%s,O=Organization,L=City,ST=State,C=Country", userID)

	// Base64 encode the complete ID
	b64ID := base64.StdEncoding.EncodeToString([]byte(completeId))

	clientIdentity := &mocks.ClientIdentity{}
	clientIdentity.GetIDReturns(b64ID, nil)
	clientIdentity.GetMSPIDReturns(mspID, nil)
	transactionContext.GetClientIdentityReturns(clientIdentity)
}

// chain is a transaction context backed by an in-memory world state and a
// clock the test moves by hand.
type chain struct {
	ctx        *mocks.TransactionContext
	worldState map[string][]byte
	events     map[string][]byte
	now        uint64
	// invoked is the chaincode named by the client proposal.
	invoked    string
}

func newChain(t *testing.T) *chain {
	t.Helper()

	c := &chain{
		ctx:        &mocks.TransactionContext{},
		worldState: map[string][]byte{},
		events:     map[string][]byte{},
		now:        StartTime,
		invoked:    TokenContractAddress,
	}
	c.ctx.PutStateStub = func(s string, b []byte) error {
		c.worldState[s] = b
		return nil
	}
	c.ctx.GetStateStub = func(s string) ([]byte, error) {
		data, found := c.worldState[s]
		if found {
			return data, nil
		}
		return nil, nil
	}
	c.ctx.GetTxTimestampStub = func() (*timestamppb.Timestamp, error) {
		return &timestamppb.Timestamp{Seconds: int64(c.now)}, nil
	}
	c.ctx.GetChannelIDStub = func() string {
		return ChannelID
	}
	c.ctx.SetEventStub = func(name string, payload []byte) error {
		c.events[name] = payload
		return nil
	}
	c.ctx.GetSignedProposalStub = func() (*peer.SignedProposal, error) {
		return signedProposal(t, c.invoked), nil
	}
	SetUserID(c.ctx, AdminAddress)
	return c
}

// signedProposal builds a client proposal invoking chaincodeName.
func signedProposal(t *testing.T, chaincodeName string) *peer.SignedProposal {
	t.Helper()

	spec, err := proto.Marshal(&peer.ChaincodeInvocationSpec{
		ChaincodeSpec: &peer.ChaincodeSpec{
			ChaincodeId: &peer.ChaincodeID{Name: chaincodeName},
		},
	})
	require.NoError(t, err)
	payload, err := proto.Marshal(&peer.ChaincodeProposalPayload{Input: spec})
	require.NoError(t, err)
	proposal, err := proto.Marshal(&peer.Proposal{Payload: payload})
	require.NoError(t, err)
	return &peer.SignedProposal{ProposalBytes: proposal}
}

func (c *chain) caller() vesting.Caller {
	caller, err := vesting.GetVerifiedCaller(c.ctx)
	if err != nil {
		panic(err)
	}
	return caller
}

func (c *chain) record(t *testing.T, vestingType vesting.VestingType) *vesting.VestingRecord {
	t.Helper()
	record, err := vesting.GetVestingRecord(c.ctx, vestingType)
	require.NoError(t, err)
	return record
}

// tokenLedger plays the companion token chaincode behind InvokeChaincode.
type tokenLedger struct {
	decimals    uint8
	pool        string
	balances    map[string]*uint256.Int
	supply      *uint256.Int
	minters     []string
	filterOwner string
	filter      string
	calls       []string
	channels    []string
	failOn      string
	// shortPay credits every recipient one unit less than transferred.
	shortPay bool
}

func newTokenLedger(pool string) *tokenLedger {
	return &tokenLedger{
		decimals: 9,
		pool:     pool,
		balances: map[string]*uint256.Int{},
		supply:   new(uint256.Int),
	}
}

func (l *tokenLedger) attach(c *chain) {
	c.ctx.InvokeChaincodeStub = l.invoke
}

func (l *tokenLedger) balance(account string) *uint256.Int {
	if b, ok := l.balances[account]; ok {
		return b
	}
	return new(uint256.Int)
}

func (l *tokenLedger) invoke(chaincodeName string, args [][]byte, channel string) peer.Response {
	fn := string(args[0])
	l.calls = append(l.calls, fn)
	l.channels = append(l.channels, channel)
	if chaincodeName != TokenContractAddress {
		return tokenError(http.StatusNotFound, "unknown chaincode "+chaincodeName)
	}
	if fn == l.failOn {
		return tokenError(http.StatusInternalServerError, fn+" failed")
	}

	switch fn {
	case "Decimals":
		return tokenOK(strconv.Itoa(int(l.decimals)))
	case "Mint":
		amount, err := uint256.FromDecimal(string(args[2]))
		if err != nil {
			return tokenError(http.StatusBadRequest, err.Error())
		}
		account := string(args[1])
		l.balances[account] = new(uint256.Int).Add(l.balance(account), amount)
		l.supply.Add(l.supply, amount)
		return tokenOK("true")
	case "Transfer":
		amount, err := uint256.FromDecimal(string(args[2]))
		if err != nil {
			return tokenError(http.StatusBadRequest, err.Error())
		}
		if l.balance(l.pool).Lt(amount) {
			return tokenError(http.StatusBadRequest, "insufficient balance")
		}
		recipient := string(args[1])
		l.balances[l.pool] = new(uint256.Int).Sub(l.balance(l.pool), amount)
		credit := amount.Clone()
		if l.shortPay {
			credit.SubUint64(credit, 1)
		}
		l.balances[recipient] = new(uint256.Int).Add(l.balance(recipient), credit)
		return tokenOK("true")
	case "BalanceOf":
		return tokenOK(l.balance(string(args[1])).Dec())
	case "TotalSupply":
		return tokenOK(l.supply.Dec())
	case "SetTransferFilter":
		l.filterOwner, l.filter = string(args[1]), string(args[2])
		return tokenOK("true")
	case "ChangeSecurity":
		var minters, nones []string
		if err := json.Unmarshal(args[1], &minters); err != nil {
			return tokenError(http.StatusBadRequest, err.Error())
		}
		if err := json.Unmarshal(args[2], &nones); err != nil {
			return tokenError(http.StatusBadRequest, err.Error())
		}
		l.minters = append(l.minters, minters...)
		for _, none := range nones {
			for i, minter := range l.minters {
				if minter == none {
					l.minters = append(l.minters[:i], l.minters[i+1:]...)
					break
				}
			}
		}
		return tokenOK("true")
	}
	return tokenError(http.StatusBadRequest, "unknown function "+fn)
}

func tokenOK(payload string) peer.Response {
	return peer.Response{
		Status:  http.StatusOK,
		Payload: []byte(payload),
	}
}

func tokenError(status int32, message string) peer.Response {
	return peer.Response{
		Status:  status,
		Message: message,
	}
}

func initializeRequest() vesting.InitializeRequest {
	return vesting.InitializeRequest{
		ContractAddress: VestingContractAddress,
		TokenContract:   TokenContractAddress,
		Treasury:        TreasuryAddress,
		Contributor:     ContributorAddress,
		Development:     DevelopmentAddress,
		Liquidity:       LiquidityAddress,
		Community:       CommunityAddress,
		Staking:         StakingAddress,
	}
}

// bootstrapped returns a chain initialized with totalSupply and its token
// ledger.
func bootstrapped(t *testing.T, totalSupply string) (*chain, *tokenLedger) {
	t.Helper()

	c := newChain(t)
	ledger := newTokenLedger(VestingContractAddress)
	ledger.attach(c)

	req := initializeRequest()
	req.TotalSupply = totalSupply
	err := vesting.Bootstrap(c.ctx, c.caller(), vesting.NewTokenContract(c.ctx, TokenContractAddress), req)
	require.NoError(t, err)
	return c, ledger
}

func requireCode(t *testing.T, err error, code vesting.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	got, ok := vesting.CodeOf(err)
	require.True(t, ok, "error %v carries no vesting code", err)
	require.Equal(t, code, got, err.Error())
}
