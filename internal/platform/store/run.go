package store

import "context"

// RunInVault wraps ctx with the vault id and calls fn inside a transaction
func RunInVault(
	ctx context.Context,
	tx TxRunner,
	vaultID string,
	fn func(ctx context.Context, q RowQuerier) error,
) error {
	ctx = WithVault(ctx, vaultID)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}
