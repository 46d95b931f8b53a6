package sales

import (
	"github.com/shopspring/decimal"
	"github.com/vitorbarbosa/varejo-api/internal/domain/entity"
)

// Tabela fixa de promoções (dado de negócio, não editável pelo usuário).
var promotions = map[string]entity.Promotion{
	"PRIMEIRA_COMPRA": {
		Code:        "PRIMEIRA_COMPRA",
		Kind:        entity.DiscountKindPercentage,
		Amount:      decimal.NewFromInt(15),
		Description: "15% na primeira compra",
	},
	"CLIENTE_VIP": {
		Code:        "CLIENTE_VIP",
		Kind:        entity.DiscountKindFixed,
		Amount:      decimal.NewFromInt(50),
		Description: "R$ 50,00 de desconto VIP",
	},
	"BLACK_FRIDAY": {
		Code:        "BLACK_FRIDAY",
		Kind:        entity.DiscountKindPercentage,
		Amount:      decimal.NewFromInt(25),
		Description: "25% na Black Friday",
	},
	"FRETE_GRATIS": {
		Code:        "FRETE_GRATIS",
		Kind:        entity.DiscountKindFixed,
		Amount:      decimal.NewFromInt(20),
		Description: "R$ 20,00 de desconto no frete",
	},
}

// LookupPromotion devolve a promoção do código, se existir.
func LookupPromotion(code string) (entity.Promotion, bool) {
	p, ok := promotions[code]
	return p, ok
}
