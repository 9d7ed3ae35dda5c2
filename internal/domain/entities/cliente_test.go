package entities

import (
	"testing"
	"time"
)

func TestClienteIdade(t *testing.T) {
	cliente := &Cliente{
		DataNascimento: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	casos := []struct {
		nome       string
		referencia time.Time
		esperado   int
	}{
		{
			nome:       "vespera do aniversario",
			referencia: time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC),
			esperado:   35,
		},
		{
			nome:       "dia do aniversario",
			referencia: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
			esperado:   36,
		},
		{
			nome:       "depois do aniversario",
			referencia: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
			esperado:   36,
		},
		{
			nome:       "inicio do ano",
			referencia: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
			esperado:   36,
		},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			if idade := cliente.Idade(caso.referencia); idade != caso.esperado {
				t.Errorf("esperava idade %d, obteve %d", caso.esperado, idade)
			}
		})
	}
}

// A idade deve mudar entre duas leituras que cruzam o aniversário,
// sem nenhuma escrita na entidade
func TestClienteIdadeRecalculadaPorLeitura(t *testing.T) {
	cliente := &Cliente{
		DataNascimento: time.Date(2000, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	antes := cliente.Idade(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))
	depois := cliente.Idade(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	if depois != antes+1 {
		t.Errorf("esperava idade %d após o aniversário, obteve %d", antes+1, depois)
	}
}
