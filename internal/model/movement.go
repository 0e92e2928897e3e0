package model

// BankMovement is one normalized row of a bank statement export. All fields
// hold the raw text from the CSV; parsing happens downstream in the importer.
type BankMovement struct {
	Date         string // "Fecha", DD/MM/YYYY
	ValueDate    string // "Fecha valor"
	Description  string // "Concepto"
	Amount       string // "Importe", comma as decimal separator
	BalanceAfter string // "Saldo Posterior"
}

// DateColumn selects which statement date feeds a suggested entry.
type DateColumn string

const (
	DateColumnFecha      DateColumn = "Fecha"
	DateColumnFechaValor DateColumn = "Fecha valor"
)
