package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

// msgServer is the action surface of the module. Every handler validates
// the message, checks authorization against the host, and runs the keeper
// logic against a store branch that is written back only on success.
type msgServer struct {
	Keeper
}

// MsgServer handles the module's action messages.
type MsgServer interface {
	Open(ctx types.Context, msg types.MsgOpen) error
	Close(ctx types.Context, msg types.MsgClose) error
	CreateToken(ctx types.Context, msg types.MsgCreateToken) error
	Issue(ctx types.Context, msg types.MsgIssue) error
	Retire(ctx types.Context, msg types.MsgRetire) error
	Transfer(ctx types.Context, msg types.MsgTransfer) error
	CreatePool(ctx types.Context, msg types.MsgCreatePool) (types.Pool, error)
	RemovePool(ctx types.Context, msg types.MsgRemovePool) error
	Withdraw(ctx types.Context, msg types.MsgWithdraw) error
	DistributeInheritance(ctx types.Context, msg types.MsgDistributeInheritance) error
	UpdateInheritanceDate(ctx types.Context, msg types.MsgUpdateInheritanceDate) error
	UpdateInheritors(ctx types.Context, msg types.MsgUpdateInheritors) error
	OnTransfer(ctx types.Context, transfer types.Transfer) error
}

// NewMsgServerImpl returns an implementation of the module MsgServer.
func NewMsgServerImpl(keeper Keeper) MsgServer {
	return &msgServer{Keeper: keeper}
}

func (m msgServer) requireAuth(ctx types.Context, account string) error {
	if !m.auth.HasAuth(ctx, account) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "missing authority of %s", account)
	}
	return nil
}

func (m msgServer) Open(ctx types.Context, msg types.MsgOpen) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := m.requireAuth(ctx, msg.Payer); err != nil {
		return err
	}
	return m.runAtomic(ctx, func(ctx types.Context) error {
		return m.Keeper.Open(ctx, msg.Owner, msg.Symbol)
	})
}

func (m msgServer) Close(ctx types.Context, msg types.MsgClose) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := m.requireAuth(ctx, msg.Owner); err != nil {
		return err
	}
	return m.runAtomic(ctx, func(ctx types.Context) error {
		return m.Keeper.Close(ctx, msg.Owner, msg.Symbol)
	})
}

func (m msgServer) CreateToken(ctx types.Context, msg types.MsgCreateToken) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := m.requireAuth(ctx, m.self); err != nil {
		return err
	}
	return m.runAtomic(ctx, func(ctx types.Context) error {
		return m.Keeper.CreateToken(ctx, msg.Issuer, msg.MaxSupply)
	})
}

func (m msgServer) Issue(ctx types.Context, msg types.MsgIssue) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	// issuer authority is state-dependent, checked in the keeper
	return m.runAtomic(ctx, func(ctx types.Context) error {
		return m.Keeper.Issue(ctx, msg.To, msg.Quantity, msg.Memo)
	})
}

func (m msgServer) Retire(ctx types.Context, msg types.MsgRetire) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return m.runAtomic(ctx, func(ctx types.Context) error {
		return m.Keeper.Retire(ctx, msg.From, msg.Quantity, msg.Memo)
	})
}

// Transfer moves self-issued tokens. A transfer addressed to the module
// account re-enters the swap/deposit classifier within the same atomic
// unit, so a bad memo rolls the funds movement back too.
func (m msgServer) Transfer(ctx types.Context, msg types.MsgTransfer) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := m.requireAuth(ctx, msg.From); err != nil {
		return err
	}
	return m.runAtomic(ctx, func(ctx types.Context) error {
		if err := m.Keeper.Transfer(ctx, msg.From, msg.To, msg.Quantity, msg.Memo); err != nil {
			return err
		}
		if msg.To != m.self {
			return nil
		}
		return m.classify(ctx, types.Transfer{
			Contract: m.self,
			From:     msg.From,
			To:       msg.To,
			Quantity: msg.Quantity,
			Memo:     msg.Memo,
		})
	})
}

func (m msgServer) CreatePool(ctx types.Context, msg types.MsgCreatePool) (types.Pool, error) {
	if err := msg.ValidateBasic(); err != nil {
		return types.Pool{}, err
	}
	if err := m.requireAuth(ctx, msg.Creator); err != nil {
		return types.Pool{}, err
	}
	var pool types.Pool
	err := m.runAtomic(ctx, func(ctx types.Context) error {
		var err error
		pool, err = m.Keeper.CreatePool(ctx, msg.Creator, msg.Token1, msg.Token2)
		return err
	})
	return pool, err
}

func (m msgServer) RemovePool(ctx types.Context, msg types.MsgRemovePool) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	// no authorization: anyone may erase a pool that holds nothing
	return m.runAtomic(ctx, func(ctx types.Context) error {
		return m.Keeper.RemovePool(ctx, msg.PoolID)
	})
}

func (m msgServer) Withdraw(ctx types.Context, msg types.MsgWithdraw) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := m.requireAuth(ctx, msg.Owner); err != nil {
		return err
	}
	return m.runAtomic(ctx, func(ctx types.Context) error {
		return m.Keeper.Withdraw(ctx, msg.Owner, msg.LqTokens)
	})
}

func (m msgServer) DistributeInheritance(ctx types.Context, msg types.MsgDistributeInheritance) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := m.requireAuth(ctx, msg.Initiator); err != nil {
		return err
	}
	return m.runAtomic(ctx, func(ctx types.Context) error {
		return m.Keeper.DistributeInheritance(ctx, msg.Initiator, msg.Owner, msg.TokenCode)
	})
}

func (m msgServer) UpdateInheritanceDate(ctx types.Context, msg types.MsgUpdateInheritanceDate) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := m.requireAuth(ctx, msg.Owner); err != nil {
		return err
	}
	return m.runAtomic(ctx, func(ctx types.Context) error {
		return m.Keeper.UpdateInheritanceDate(ctx, msg.Owner, msg.InactivePeriod)
	})
}

func (m msgServer) UpdateInheritors(ctx types.Context, msg types.MsgUpdateInheritors) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := m.requireAuth(ctx, msg.Owner); err != nil {
		return err
	}
	return m.runAtomic(ctx, func(ctx types.Context) error {
		return m.Keeper.UpdateInheritors(ctx, msg.Owner, msg.Inheritors)
	})
}

// OnTransfer is the notification entry point for transfers executed on
// external token contracts. Transfers not addressed to the module account
// are ignored; the rest must carry a valid swap or deposit memo.
func (m msgServer) OnTransfer(ctx types.Context, transfer types.Transfer) error {
	if transfer.To != m.self {
		return nil
	}
	return m.runAtomic(ctx, func(ctx types.Context) error {
		return m.classify(ctx, transfer)
	})
}

// classify routes an incoming transfer by its memo prefix.
func (m msgServer) classify(ctx types.Context, transfer types.Transfer) error {
	income := types.NewExtendedAsset(transfer.Quantity, transfer.Contract)

	switch {
	case types.IsSwapMemo(transfer.Memo):
		cmd, err := types.ParseMemo(transfer.Memo)
		if err != nil {
			return err
		}
		return m.doSwap(ctx, transfer.From, income, cmd.(types.SwapCommand))

	case types.IsDepositMemo(transfer.Memo):
		cmd, err := types.ParseMemo(transfer.Memo)
		if err != nil {
			return err
		}
		return m.doDeposit(ctx, transfer.From, income, transfer.Memo, cmd.(types.DepositCommand))

	default:
		return errorsmod.Wrapf(types.ErrInvalidMemo, "invalid transaction memo %q", transfer.Memo)
	}
}
