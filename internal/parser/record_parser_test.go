package parser

import (
	"testing"

	"github.com/raianjesus3-tech/calculadora-de-horas/internal/model"
)

func block(name, cargo, totais string) string {
	return "NOME DO FUNCIONÁRIO: " + name + "  PIS 00000\n" +
		"NOME DO CARGO: " + cargo + "\n" +
		"TOTAIS " + totais + "\n"
}

func TestParseBlock_StandardFourTokens(t *testing.T) {
	t.Parallel()

	rec, ok := ParseBlock(block("ANA SILVA", "Atendente", "10:00 02:00 00:30 01:15"))
	if !ok {
		t.Fatalf("bloco deveria ser reconhecido")
	}
	if rec.Role != model.RoleStandard {
		t.Fatalf("vínculo: got %v", rec.Role)
	}
	if rec.RegularHours.String() != "10:00" || rec.NightHours.String() != "02:00" ||
		rec.Absence.String() != "00:30" || rec.Overtime.String() != "01:15" {
		t.Fatalf("mapeamento: %+v", rec)
	}
	if rec.Balance.String() != "00:45" {
		t.Fatalf("saldo: got %s", rec.Balance)
	}
}

func TestParseBlock_CourierFourTokens_SameMapping(t *testing.T) {
	t.Parallel()

	// com 4 tokens o mapeamento independe do vínculo
	rec, ok := ParseBlock(block("PEDRO LIMA", "MOTOBOY", "10:00 02:00 00:30 01:15"))
	if !ok {
		t.Fatalf("bloco deveria ser reconhecido")
	}
	if rec.Role != model.RoleCourier {
		t.Fatalf("vínculo: got %v", rec.Role)
	}
	if rec.RegularHours.String() != "10:00" || rec.NightHours.String() != "02:00" ||
		rec.Absence.String() != "00:30" || rec.Overtime.String() != "01:15" {
		t.Fatalf("mapeamento: %+v", rec)
	}
}

func TestParseBlock_StandardFiveTokens_LeadingColumnDiscarded(t *testing.T) {
	t.Parallel()

	rec, ok := ParseBlock(block("JOÃO SOUZA", "CAIXA", "00:10 40:00 03:00 00:20 02:00"))
	if !ok {
		t.Fatalf("bloco deveria ser reconhecido")
	}
	if rec.RegularHours.String() != "40:00" || rec.NightHours.String() != "03:00" ||
		rec.Absence.String() != "00:20" || rec.Overtime.String() != "02:00" {
		t.Fatalf("mapeamento com coluna descartada: %+v", rec)
	}
	if rec.Balance.String() != "01:40" {
		t.Fatalf("saldo: got %s", rec.Balance)
	}
}

func TestParseBlock_TokenCountVariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		totais                            string
		regular, night, absence, overtime string
	}{
		{"44:00", "44:00", "00:00", "00:00", "00:00"},
		{"44:00 01:00", "44:00", "00:00", "00:00", "01:00"},
		{"44:00 02:00 01:00", "44:00", "02:00", "00:00", "01:00"},
		// excedentes além dos 5 mapeados são descartados
		{"00:10 40:00 03:00 00:20 02:00 09:09 08:08", "40:00", "03:00", "00:20", "02:00"},
	}
	for _, c := range cases {
		rec, ok := ParseBlock(block("FULANO DE TAL", "REPOSITOR", c.totais))
		if !ok {
			t.Fatalf("%q: bloco deveria ser reconhecido", c.totais)
		}
		if rec.RegularHours.String() != c.regular || rec.NightHours.String() != c.night ||
			rec.Absence.String() != c.absence || rec.Overtime.String() != c.overtime {
			t.Fatalf("%q: %+v", c.totais, rec)
		}
	}
}

func TestParseBlock_CourierThreeTokens(t *testing.T) {
	t.Parallel()

	rec, ok := ParseBlock(block("CARLOS MOTA", "MOTOBOY ENTREGADOR", "05:00 00:00 01:00"))
	if !ok {
		t.Fatalf("bloco deveria ser reconhecido")
	}
	if rec.RegularHours.String() != "05:00" || rec.NightHours.String() != "00:00" ||
		rec.Overtime.String() != "01:00" || rec.Absence.String() != "00:00" {
		t.Fatalf("mapeamento motoboy: %+v", rec)
	}
}

func TestParseBlock_SecondsInTokensTruncated(t *testing.T) {
	t.Parallel()

	rec, ok := ParseBlock(block("ANA SILVA", "ATENDENTE", "40:00:30 02:00:15"))
	if !ok {
		t.Fatalf("bloco deveria ser reconhecido")
	}
	if rec.RegularHours.String() != "40:00" || rec.Overtime.String() != "02:00" {
		t.Fatalf("segundos deveriam ser descartados: %+v", rec)
	}
}

func TestParseBlock_CourierWholeWordOnly(t *testing.T) {
	t.Parallel()

	// "MOTOBOYS" contém a palavra inteira; um prefixo colado não
	rec, _ := ParseBlock(block("X", "LÍDER DE MOTOBOYZ", "01:00"))
	if rec.Role != model.RoleStandard {
		t.Fatalf("cargo sem a palavra inteira não é motoboy: %v", rec.Role)
	}
	rec, _ = ParseBlock(block("Y", "motoboy noturno", "01:00"))
	if rec.Role != model.RoleCourier {
		t.Fatalf("classificação deveria ignorar caixa: %v", rec.Role)
	}
}

func TestParseBlock_MissingPatternsSkipped(t *testing.T) {
	t.Parallel()

	if _, ok := ParseBlock("NOME DO FUNCIONÁRIO: ANA SILVA\nTOTAIS 01:00"); ok {
		t.Fatalf("bloco sem o padrão nome...PIS deveria ser pulado")
	}
	if _, ok := ParseBlock("NOME DO FUNCIONÁRIO: ANA PIS 1\nNOME DO CARGO: X"); ok {
		t.Fatalf("bloco sem TOTAIS deveria ser pulado")
	}
}

func TestParseDocument_EndToEnd(t *testing.T) {
	t.Parallel()

	text := "Cartão de Ponto\n" + block("PEDRO LIMA", "MOTOBOY", "05:00 00:00 01:00") +
		"Cartão de Ponto\n" + block("JOÃO SOUZA", "CAIXA", "00:10 40:00 03:00 00:20 02:00")

	records := ParseDocument(text)
	if len(records) != 2 {
		t.Fatalf("esperava 2 registros, got %d", len(records))
	}

	courier := records[0]
	if courier.Role != model.RoleCourier || courier.RegularHours.String() != "05:00" ||
		courier.NightHours.String() != "00:00" || courier.Overtime.String() != "01:00" ||
		courier.Absence.String() != "00:00" || courier.Balance.String() != "01:00" {
		t.Fatalf("motoboy: %+v", courier)
	}

	standard := records[1]
	if standard.Role != model.RoleStandard || standard.RegularHours.String() != "40:00" ||
		standard.NightHours.String() != "03:00" || standard.Absence.String() != "00:20" ||
		standard.Overtime.String() != "02:00" || standard.Balance.String() != "01:40" {
		t.Fatalf("mensalista: %+v", standard)
	}
}

func TestParseBlock_NameAcrossLines(t *testing.T) {
	t.Parallel()

	text := "NOME DO FUNCIONÁRIO: MARIA\nEDUARDA COSTA PIS 9\nNOME DO CARGO: GERENTE\nTOTAIS 44:00\n"
	rec, ok := ParseBlock(text)
	if !ok {
		t.Fatalf("bloco deveria ser reconhecido")
	}
	if rec.Name != "MARIA EDUARDA COSTA" {
		t.Fatalf("nome em múltiplas linhas: got %q", rec.Name)
	}
}
