// file: internals/features/billing/service/midtrans.go
package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	m "migym_backend/internals/features/billing/model"
)

var SnapClient snap.Client

// InitMidtrans inicializa el cliente Snap con la server key del entorno.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken crea la transacción Snap para una factura pendiente y
// devuelve el token de checkout. El order_id es el número de factura.
func GenerateSnapToken(inv *m.InvoiceModel, customerName, customerEmail string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  inv.InvoiceNumber,
			GrossAmt: int64(inv.InvoiceTotal),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: customerEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
