package analyst

import (
	"fmt"
	"time"
)

// heuristicAnalysis is the tier returned when the model replied with text
// that does not decode as JSON. The record is hand-authored with
// generic-but-plausible domain content; the only parts derived from the
// call are the segment interpolations and the truncated raw reply kept
// under raw_response for diagnostics.
func heuristicAnalysis(req AnalysisRequest, raw string, model string, now time.Time) map[string]any {
	segmento := req.segmentoOr("empreendedorismo")

	return map[string]any{
		"avatar_ultra_detalhado": map[string]any{
			"nome_ficticio": "Avatar Personalizado",
			"perfil_demografico": map[string]any{
				"idade":        "25-45 anos - faixa de maior poder aquisitivo e necessidade de crescimento",
				"genero":       "60% masculino, 40% feminino - predominância masculina no empreendedorismo",
				"renda":        "R$ 5.000 - R$ 25.000 - classe média alta com ambições de crescimento",
				"escolaridade": "Superior completo - 80% têm graduação ou pós-graduação",
				"localizacao":  "Grandes centros urbanos - SP, RJ, MG, RS, PR",
				"estado_civil": "70% casados ou em união estável",
				"filhos":       "60% têm filhos - motivação adicional para crescer",
				"profissao":    "Empreendedores, profissionais liberais, executivos",
			},
			"perfil_psicografico": map[string]any{
				"personalidade":        "Ambiciosos, determinados, mas frequentemente sobrecarregados e ansiosos",
				"valores":              "Liberdade financeira, reconhecimento profissional, segurança familiar",
				"interesses":           "Tecnologia, investimentos, desenvolvimento pessoal, networking",
				"estilo_vida":          "Rotina intensa, trabalham muito, buscam eficiência e resultados",
				"comportamento_compra": "Pesquisam muito, comparam opções, decidem por lógica mas compram por emoção",
				"influenciadores":      "Outros empreendedores de sucesso, mentores, especialistas reconhecidos",
				"medos_profundos":      "Fracassar publicamente, perder dinheiro, não conseguir sustentar a família",
				"aspiracoes_secretas":  "Ser reconhecido como autoridade, ter liberdade total, impactar milhares",
			},
			"dores_viscerais": []any{
				"Trabalhar 12+ horas por dia sem ver crescimento proporcional",
				"Sentir que está sempre correndo atrás, nunca na frente",
				"Ver concorrentes menores crescendo mais rápido",
				"Não conseguir se desconectar do trabalho nem nos finais de semana",
				"Ter medo constante de que tudo pode desmoronar a qualquer momento",
				"Sentir que está desperdiçando seu potencial em tarefas operacionais",
				"Não ter tempo de qualidade com família por causa do trabalho",
				"Estar sempre no limite financeiro apesar de faturar bem",
				"Sentir que não tem controle real sobre os resultados do negócio",
				"Ter vergonha de admitir que não sabe como crescer de forma sustentável",
			},
			"desejos_secretos": []any{
				"Ser reconhecido como uma autoridade respeitada no mercado",
				"Ter um negócio que funcione sem sua presença constante",
				"Ganhar dinheiro enquanto dorme através de sistemas automatizados",
				"Ser convidado para palestrar em grandes eventos do setor",
				"Ter liberdade total de horários e localização",
				"Deixar um legado que impacte milhares de pessoas",
				"Ter segurança financeira suficiente para nunca mais se preocupar",
				"Ser visto pelos pares como alguém que 'chegou lá'",
				"Poder ajudar outros a alcançarem o sucesso",
				"Ter tempo e recursos para realizar sonhos pessoais adiados",
			},
			"objecoes_reais": []any{
				"Já tentei várias coisas e não funcionaram",
				"Não tenho tempo para implementar mais uma estratégia",
				"Meu nicho é muito específico, isso não vai funcionar para mim",
				"Preciso ver resultados rápidos, não posso esperar meses",
				"Não tenho equipe suficiente para executar",
				"Já gasto muito com marketing e não vejo retorno",
				"Meus clientes são diferentes, eles não compram assim",
				"Não tenho conhecimento técnico para implementar",
				"E se eu investir e não der certo? Não posso me dar ao luxo de perder dinheiro",
			},
			"jornada_emocional": map[string]any{
				"consciencia":  "Percebe que está estagnado quando vê outros crescendo ou quando bate metas financeiras",
				"consideracao": "Pesquisa intensivamente, consome muito conteúdo, busca cases de sucesso similares",
				"decisao":      "Decide baseado em confiança no método + urgência da situação + prova social",
				"pos_compra":   "Quer implementar rapidamente mas tem medo de não conseguir executar corretamente",
			},
			"linguagem_interna": map[string]any{
				"frases_dor": []any{
					"Estou trabalhando muito mas não estou saindo do lugar",
					"Sinto que estou desperdiçando meu potencial",
					"Preciso de um sistema que funcione de verdade",
				},
				"frases_desejo": []any{
					"Quero ter um negócio que funcione sem mim",
					"Sonho em ter liberdade financeira e de tempo",
					"Quero ser reconhecido como autoridade no meu mercado",
				},
				"metaforas_comuns": []any{
					"Corrida de hamster", "Apagar incêndio", "Remar contra a maré",
				},
				"vocabulario_especifico": []any{
					"ROI", "conversão", "funil", "lead", "ticket médio", "LTV", "CAC",
				},
				"tom_comunicacao": "Direto, objetivo, gosta de dados e provas",
			},
			"gatilhos_mentais_especificos": []any{
				"Urgência temporal", "Escassez de oportunidade", "Prova social de pares",
				"Autoridade reconhecida", "Medo da perda", "Reciprocidade",
			},
			"resistencias_ocultas": []any{
				"Medo de sair da zona de conforto", "Síndrome do impostor",
				"Perfeccionismo paralisante", "Desconfiança em métodos 'fáceis'",
			},
			"momento_ideal_abordagem": "Quando está frustrado com resultados atuais ou vê oportunidade de crescimento",
		},
		"drivers_mentais_customizados": []any{
			map[string]any{
				"nome":                 "Hamster Dourado",
				"gatilho_central":      "Frustração com trabalho sem resultado proporcional",
				"definicao_visceral":   "Você trabalha muito mas gira na mesma roda, como um hamster numa gaiola de ouro",
				"mecanica_psicologica": "Ativa a dor da estagnação disfarçada de progresso",
				"momento_instalacao":   "Início da apresentação, ao falar sobre rotina atual",
				"roteiro_ativacao": map[string]any{
					"pergunta_abertura": "Você se sente um hamster numa roda de ouro?",
					"historia_analogia": "É como ter um Ferrari preso no trânsito - todo esse potencial, mas você não sai do lugar",
					"metafora_visual":   "Imagine acordar sabendo que seu negócio trabalhou a noite toda sem você",
					"comando_acao":      "Pare de girar a roda. Comece a construir alavancas.",
				},
				"frases_ancoragem": []any{
					"Hamster dourado não é sucesso, é escravidão sofisticada",
					"Sua roda está girando, mas você não está saindo do lugar",
					"Trabalho duro sem sistema é só teatro de produtividade",
				},
				"prova_logica": map[string]any{
					"estatistica":  "80% dos empreendedores trabalham mais de 60h/semana",
					"caso_exemplo": "João faturava R$ 50k mas trabalhava 80h/semana até descobrir automação",
					"demonstracao": "Mostrar diferença entre receita por hora trabalhada",
				},
				"loop_reforco": "Toda vez que se sentir sobrecarregado, lembre: hamster ou empresário?",
			},
		},
		"provas_visuais_sugeridas": []any{
			map[string]any{
				"nome":             "Demonstração da Roda do Hamster",
				"conceito_alvo":    "Mostrar que trabalho sem sistema é ineficiente",
				"experimento":      "Usar uma roda de hamster real e mostrar movimento sem progresso",
				"analogia":         "Como o negócio atual - muito movimento, pouco avanço",
				"materiais":        []any{"Roda de hamster", "Cronômetro", "Régua"},
				"roteiro_completo": "1. Mostrar hamster correndo 2. Medir distância = zero 3. Comparar com esteira que vai a algum lugar",
				"variacoes":        "Online: usar animação; Presencial: roda física",
				"gestao_riscos":    "Se não funcionar, usar metáfora verbal reforçada",
			},
		},
		"insights_exclusivos_ultra": []any{
			fmt.Sprintf("O mercado de %s está passando por uma transformação digital acelerada", segmento),
			"Existe uma lacuna entre ferramentas disponíveis e conhecimento para implementá-las",
			"A maior dor não é falta de informação, mas excesso de informação sem direcionamento",
			"Empreendedores pagam premium por simplicidade e implementação guiada",
			"O fator decisivo de compra é confiança no método + urgência da situação atual",
			"Prova social de pares vale mais que depoimentos de clientes diferentes",
			"A objeção real não é preço, é medo de mais uma tentativa frustrada",
			"Sistemas automatizados são vistos como 'santo graal' mas poucos sabem implementar",
			"A jornada de compra é longa (3-6 meses) mas a decisão é emocional e rápida",
			"Conteúdo educativo gratuito é porta de entrada, mas venda acontece na demonstração prática",
			"Mercado está saturado de teoria, faminto por implementação prática",
			"Diferencial competitivo está na execução, não na estratégia",
			"Clientes querem ser guiados passo a passo, não apenas informados",
			"ROI deve ser demonstrado em semanas, não meses, para gerar confiança",
			"Comunidade e networking são fatores de retenção mais importantes que o produto",
		},
		"raw_response": truncate(raw, rawResponseLimit),
		"metadata_gemini": map[string]any{
			"generated_at":  now.Format(time.RFC3339),
			"model":         model,
			"version":       analysisVersion,
			"analysis_type": "heuristic_extraction",
			"note":          "Resposta da IA não estava em JSON válido; análise estruturada genérica retornada",
		},
	}
}

// emergencyAnalysis is the last-resort record used when the model call
// itself fails or returns nothing. Fully static except for the segment,
// with a metadata sub-record that marks the result as degraded.
func emergencyAnalysis(req AnalysisRequest, now time.Time) map[string]any {
	segmento := req.segmentoOr("empreendedorismo")

	return map[string]any{
		"avatar_ultra_detalhado": map[string]any{
			"nome_ficticio": "Empreendedor Ambicioso",
			"perfil_demografico": map[string]any{
				"idade":        "30-45 anos - faixa de maior maturidade profissional",
				"genero":       "Misto com leve predominância masculina",
				"renda":        "R$ 8.000 - R$ 30.000 - classe média alta",
				"escolaridade": "Superior completo - alta escolaridade",
				"localizacao":  "Grandes centros urbanos brasileiros",
				"estado_civil": "Maioria casada ou em relacionamento sério",
				"filhos":       "Muitos têm filhos - motivação familiar forte",
				"profissao":    "Empreendedores e profissionais liberais",
			},
			"perfil_psicografico": map[string]any{
				"personalidade":        "Ambiciosos, determinados, orientados a resultados, mas frequentemente ansiosos",
				"valores":              "Liberdade, reconhecimento, segurança financeira, impacto positivo",
				"interesses":           "Crescimento pessoal, tecnologia, investimentos, networking",
				"estilo_vida":          "Rotina intensa, sempre conectados, buscam eficiência",
				"comportamento_compra": "Pesquisam muito, decidem por lógica mas compram por emoção",
				"influenciadores":      "Outros empreendedores de sucesso, mentores reconhecidos",
				"medos_profundos":      "Fracasso público, instabilidade financeira, estagnação",
				"aspiracoes_secretas":  "Ser autoridade reconhecida, ter liberdade total, deixar legado",
			},
			"dores_viscerais": []any{
				"Trabalhar excessivamente sem ver crescimento proporcional nos resultados",
				"Sentir-se sempre correndo atrás, nunca conseguindo ficar à frente da concorrência",
				"Ver competidores menores crescendo mais rapidamente",
				"Não conseguir se desconectar do trabalho, mesmo nos momentos de descanso",
				"Viver com medo constante de que tudo pode desmoronar a qualquer momento",
				"Desperdiçar potencial em tarefas operacionais em vez de estratégicas",
				"Sacrificar tempo de qualidade com família por causa das demandas do negócio",
				"Estar sempre no limite financeiro apesar de ter um bom faturamento",
				"Não ter controle real sobre os resultados e dependências externas",
				"Sentir vergonha de admitir que não sabe como crescer de forma sustentável",
			},
			"desejos_secretos": []any{
				"Ser reconhecido como uma autoridade respeitada e influente no seu mercado",
				"Ter um negócio que funcione perfeitamente sem sua presença constante",
				"Ganhar dinheiro de forma passiva através de sistemas automatizados",
				"Ser convidado para palestrar em grandes eventos e conferências do setor",
				"Ter liberdade total de horários, localização e decisões",
				"Deixar um legado significativo que impacte positivamente milhares de pessoas",
				"Alcançar segurança financeira suficiente para nunca mais se preocupar com dinheiro",
				"Ser visto pelos pares como alguém que realmente 'chegou lá'",
				"Ter recursos e conhecimento para ajudar outros a alcançarem o sucesso",
				"Ter tempo e recursos para realizar sonhos pessoais que foram adiados",
			},
			"objecoes_reais": []any{
				"Já tentei várias estratégias diferentes e nenhuma funcionou como prometido",
				"Não tenho tempo suficiente para implementar mais uma nova estratégia complexa",
				"Meu nicho é muito específico e diferente, essas táticas não vão funcionar para mim",
				"Preciso ver resultados rápidos e concretos, não posso esperar meses para ver retorno",
				"Não tenho uma equipe grande o suficiente para executar todas essas ações",
				"Já invisto muito em marketing e publicidade sem ver o retorno esperado",
				"Meus clientes são diferentes e mais exigentes, eles não compram por impulso",
				"Não tenho conhecimento técnico suficiente para implementar sistemas complexos",
				"E se eu investir mais dinheiro e não der certo? Não posso me dar ao luxo de perder mais",
			},
			"jornada_emocional": map[string]any{
				"consciencia":  "Percebe estagnação quando compara resultados com concorrentes ou quando metas não são atingidas",
				"consideracao": "Pesquisa intensivamente, consome muito conteúdo educativo, busca cases de sucesso similares ao seu",
				"decisao":      "Decide baseado na combinação de confiança no método + urgência da situação + prova social convincente",
				"pos_compra":   "Quer implementar rapidamente mas tem receio de não conseguir executar corretamente sozinho",
			},
			"linguagem_interna": map[string]any{
				"frases_dor": []any{
					"Estou trabalhando muito mas parece que não saio do lugar",
					"Sinto que estou desperdiçando todo o meu potencial",
					"Preciso urgentemente de um sistema que realmente funcione",
				},
				"frases_desejo": []any{
					"Quero ter um negócio que funcione sem depender de mim o tempo todo",
					"Sonho em ter verdadeira liberdade financeira e de tempo",
					"Quero ser reconhecido como uma autoridade respeitada no meu mercado",
				},
				"metaforas_comuns": []any{
					"Corrida de hamster na roda", "Apagar incêndio constantemente", "Remar contra a maré",
				},
				"vocabulario_especifico": []any{
					"ROI", "conversão", "funil de vendas", "lead qualificado", "ticket médio", "LTV", "CAC",
				},
				"tom_comunicacao": "Direto e objetivo, aprecia dados concretos e provas tangíveis",
			},
			"gatilhos_mentais_especificos": []any{
				"Urgência temporal bem fundamentada", "Escassez de oportunidade real",
				"Prova social de pares do mesmo nível", "Autoridade reconhecida no mercado",
				"Medo da perda de oportunidades", "Reciprocidade e valor antecipado",
			},
			"resistencias_ocultas": []any{
				"Medo profundo de sair da zona de conforto conhecida",
				"Síndrome do impostor que questiona se merece o sucesso",
				"Perfeccionismo paralisante que impede ação",
				"Desconfiança em métodos que parecem 'fáceis demais'",
			},
			"momento_ideal_abordagem": "Quando está frustrado com resultados atuais ou identifica clara oportunidade de crescimento",
		},
		"escopo_posicionamento": map[string]any{
			"posicionamento_mercado": "Solução premium para empreendedores que querem resultados rápidos e sustentáveis",
			"proposta_valor_unica":   "Transforme seu negócio com metodologia comprovada e suporte especializado",
			"diferenciais_competitivos": []any{
				"Metodologia exclusiva testada e aprovada",
				"Suporte personalizado e acompanhamento contínuo",
				"Resultados mensuráveis e garantidos",
			},
			"mensagem_central":       "Pare de trabalhar NO negócio e comece a trabalhar PELO negócio",
			"tom_comunicacao":        "Direto, confiante, baseado em resultados",
			"nicho_especifico":       req.segmentoOr("Empreendedorismo Digital"),
			"estrategia_oceano_azul": "Criar categoria própria focada em implementação prática",
			"ancoragem_preco":        "Investimento que se paga em 30 dias",
		},
		"insights_exclusivos_ultra": []any{
			fmt.Sprintf("O mercado de %s está em transformação acelerada", segmento),
			"Existe lacuna entre ferramentas disponíveis e conhecimento para implementá-las",
			"A maior dor não é falta de informação, mas excesso sem direcionamento",
			"Empreendedores pagam premium por simplicidade e implementação guiada",
			"Fator decisivo é confiança no método + urgência da situação",
			"Prova social de pares vale mais que depoimentos genéricos",
			"Objeção real não é preço, é medo de mais uma tentativa frustrada",
			"Sistemas automatizados são 'santo graal' mas poucos sabem implementar",
			"Jornada de compra é longa mas decisão é emocional e rápida",
			"Conteúdo gratuito é porta de entrada, venda acontece na demonstração",
			"Mercado saturado de teoria, faminto por implementação prática",
			"Diferencial está na execução, não na estratégia",
			"Clientes querem ser guiados passo a passo",
			"ROI deve ser demonstrado em semanas para gerar confiança",
			"Análise gerada em modo de emergência - execute nova análise para resultados completos",
		},
		"metadata_gemini": map[string]any{
			"generated_at": now.Format(time.RFC3339),
			"model":        emergencyModelTag,
			"version":      analysisVersion,
			"note":         "Análise gerada em modo de emergência devido a erro na IA principal",
		},
	}
}
