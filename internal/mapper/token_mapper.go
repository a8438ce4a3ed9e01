package mapper

import (
	"encoding/json"

	"predictplay-be/internal/entity"
	"predictplay-be/internal/model"

	"gorm.io/datatypes"
)

type TokenMapper struct{}

func NewTokenMapper() *TokenMapper {
	return &TokenMapper{}
}

func (m *TokenMapper) BalanceToEntity(b *model.UserTokenBalance) *entity.UserTokenBalance {
	if b == nil {
		return nil
	}
	return &entity.UserTokenBalance{
		UserId:    b.UserId,
		Balance:   b.Balance,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (m *TokenMapper) BalanceToModel(b *entity.UserTokenBalance) *model.UserTokenBalance {
	if b == nil {
		return nil
	}
	return &model.UserTokenBalance{
		UserId:    b.UserId,
		Balance:   b.Balance,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (m *TokenMapper) TransactionToEntity(t *model.TokenTransaction) *entity.TokenTransaction {
	if t == nil {
		return nil
	}
	var metadata map[string]interface{}
	if len(t.Metadata) > 0 {
		_ = json.Unmarshal(t.Metadata, &metadata)
	}
	return &entity.TokenTransaction{
		Id:             t.Id,
		UserId:         t.UserId,
		TokensDeducted: t.TokensDeducted,
		Type:           entity.TransactionType(t.Type),
		Action:         t.Action,
		RelatedModelId: t.RelatedModelId,
		RelatedId:      t.RelatedId,
		Metadata:       metadata,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *TokenMapper) TransactionToModel(t *entity.TokenTransaction) *model.TokenTransaction {
	if t == nil {
		return nil
	}
	var metadata datatypes.JSON
	if t.Metadata != nil {
		raw, err := json.Marshal(t.Metadata)
		if err == nil {
			metadata = raw
		}
	}
	return &model.TokenTransaction{
		Id:             t.Id,
		UserId:         t.UserId,
		TokensDeducted: t.TokensDeducted,
		Type:           string(t.Type),
		Action:         t.Action,
		RelatedModelId: t.RelatedModelId,
		RelatedId:      t.RelatedId,
		Metadata:       metadata,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *TokenMapper) TransactionsToEntities(ts []*model.TokenTransaction) []*entity.TokenTransaction {
	out := make([]*entity.TokenTransaction, 0, len(ts))
	for _, t := range ts {
		out = append(out, m.TransactionToEntity(t))
	}
	return out
}
