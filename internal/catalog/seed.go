package catalog

// Seed returns the PPE catalog shipped with the original EPI system. Items
// with a single "Único" variant are one-size; uniforms and boots carry the
// full size grid with per-size stock codes.
func Seed() []Item {
	return []Item{
		{ID: "epi1", Name: "ABAFADOR CONCHA ABS/VD LM 22DB", ReferenceCode: "AR05/D501", Category: "Proteção Auditiva", Type: "Abafador", Variants: []Variant{{Code: "30230646", Size: "Único"}}},
		{ID: "epi2", Name: "CARNEIRA CAPAC H-700 PEAD 3M", ReferenceCode: "30230599", Category: "Proteção Cabeça", Type: "Acessório Capacete", Variants: []Variant{{Code: "30230599", Size: "Único"}}},
		{ID: "epi3", Name: "CLIP TRANSPORTE LUVA PA PT 30CM", ReferenceCode: "30276734", Category: "Acessórios", Type: "Clip", Variants: []Variant{{Code: "30276734", Size: "Único"}}},
		{ID: "epi4", Name: "COLETE SEGURANCA SP PES VD", ReferenceCode: "30230565", Category: "Vestimenta", Type: "Colete", Variants: []Variant{{Code: "30230565", Size: "XG"}}},
		{ID: "epi5", Name: "COLETE TRANSP RADIO UNIV COURO PT", ReferenceCode: "30257917", Category: "Vestimenta", Type: "Colete Rádio", Variants: []Variant{{Code: "30257917", Size: "UN"}}},
		{ID: "epi6", Name: "JUGULAR CAP SEG 2 GANCHOS TECIDO ELAST", ReferenceCode: "30230600", Category: "Proteção Cabeça", Type: "Acessório Capacete", Variants: []Variant{{Code: "30230600", Size: "Único"}}},
		{ID: "epi7", Name: "LANTERNA CABECA PVC LED PT", ReferenceCode: "30174314", Category: "Iluminação", Type: "Lanterna de Cabeça", Variants: []Variant{{Code: "30174314", Size: "Único"}}},
		{ID: "epi8", Name: "LANTERNA TATICA AL LED PT", ReferenceCode: "30203259", Category: "Iluminação", Type: "Lanterna Tática", Variants: []Variant{{Code: "30203259", Size: "Único"}}},
		{ID: "epi9", Name: "LUVA ANTICORTE AI CZ", ReferenceCode: "30240955", Category: "Luvas", Type: "Anticorte", Variants: []Variant{{Code: "30240955", Size: "G"}}},
		{ID: "epi10", Name: "LUVA LIMPEZA NBR AM/AZ ANTID", ReferenceCode: "30241616", Category: "Luvas", Type: "Limpeza", Variants: []Variant{{Code: "30241616", Size: "9"}}},
		{ID: "epi11", Name: "LUVA MALHA PA/ANTI", ReferenceCode: "30281346", Category: "Luvas", Type: "Malha", Variants: []Variant{{Code: "30281346", Size: "T9"}}},
		{ID: "epi12", Name: "MACACAO SEG UNI TYVEK BR", ReferenceCode: "30127494", Category: "Vestimenta", Type: "Macacão", Variants: []Variant{{Code: "30127494", Size: "GG"}}},
		{ID: "epi13", Name: "LUVA SEG SOLD RASP MD", ReferenceCode: "30228672", Category: "Luvas", Type: "Soldador", Variants: []Variant{{Code: "30228672", Size: "G"}}},
		{ID: "epi14", Name: "LUVA SEG ABRAS VAQ CT", ReferenceCode: "30241425", Category: "Luvas", Type: "Vaqueta", Variants: []Variant{{Code: "30241425", Size: "GG"}}},
		{ID: "epi15", Name: "CADEADO 25MM LT VM H22MM SIMPL", ReferenceCode: "30215379", Category: "Segurança", Type: "Cadeado", Variants: []Variant{{Code: "30215379", Size: "Único"}}},
		{ID: "epi16", Name: "CAMISA FEMININA ADM", ReferenceCode: "REF-CF-ADM", Category: "Vestimenta", Type: "Uniforme", Variants: []Variant{{Code: "30231227", Size: "PP"}, {Code: "30274662", Size: "P"}, {Code: "30274663", Size: "M"}, {Code: "30274664", Size: "G"}, {Code: "30274679", Size: "GG"}, {Code: "30274676", Size: "EXG"}}},
		{ID: "epi17", Name: "JAQUETA ADM AZUL", ReferenceCode: "REF-JQ-ADM", Category: "Vestimenta", Type: "Uniforme", Variants: []Variant{{Code: "30231283", Size: "P"}, {Code: "30231284", Size: "M"}, {Code: "30231285", Size: "G"}, {Code: "30231286", Size: "GG"}, {Code: "30231288", Size: "EXG"}}},
		{ID: "epi18", Name: "CALÇA OPERACIONAL CAQUI", ReferenceCode: "REF-CLC-OP", Category: "Vestimenta", Type: "Uniforme", Variants: []Variant{{Code: "30274683", Size: "P"}, {Code: "30274656", Size: "M"}, {Code: "30274682", Size: "G"}, {Code: "30274716", Size: "GG"}, {Code: "30231282", Size: "EG"}}},
		{ID: "epi19", Name: "BOTA OPER LG PT C/BIQ COMP", ReferenceCode: "REF-BT-OP", Category: "Calçados", Type: "Bota", Variants: []Variant{{Code: "30261756", Size: "38"}, {Code: "30261759", Size: "41"}, {Code: "30261770", Size: "42"}, {Code: "30261771", Size: "43"}, {Code: "30261773", Size: "44"}}},
		{ID: "epi20", Name: "CAPA DE CHUVA AMARELA", ReferenceCode: "REF-CP-CHV", Category: "Vestimenta", Type: "Capa de Chuva", Variants: []Variant{{Code: "30244314", Size: "M"}, {Code: "30244311", Size: "G"}, {Code: "30244310", Size: "GG"}, {Code: "30244312", Size: "XG"}, {Code: "30244313", Size: "XXG"}}},
		{ID: "epi21", Name: "CAPACETE DE SEGURANÇA", ReferenceCode: "REF-CAP", Category: "Proteção Cabeça", Type: "Capacete", Variants: []Variant{{Code: "30230563", Size: "Branco"}, {Code: "30248833", Size: "Verde"}, {Code: "30125775", Size: "Amarelo"}}},
		{ID: "epi22", Name: "CAMISETA BRANCA ELETRICISTA", ReferenceCode: "REF-CM-ELET", Category: "Vestimenta", Type: "Uniforme Eletricista", Variants: []Variant{{Code: "30271657", Size: "P"}, {Code: "30271658", Size: "M"}, {Code: "30271659", Size: "G"}, {Code: "30271660", Size: "GG"}, {Code: "30271661", Size: "EXG"}}},
		{ID: "epi23", Name: "CAMISETA MECÂNICO - AZUL", ReferenceCode: "REF-CM-MEC", Category: "Vestimenta", Type: "Uniforme", Variants: []Variant{{Code: "30274592", Size: "M"}, {Code: "30274595", Size: "GG"}, {Code: "30274590", Size: "EG"}}},
		{ID: "epi24", Name: "CAMISETA - BRIGADISTA", ReferenceCode: "REF-CM-BRG", Category: "Vestimenta", Type: "Uniforme Brigadista", Variants: []Variant{{Code: "30258276", Size: "P"}, {Code: "30258260", Size: "M"}, {Code: "30258217", Size: "G"}, {Code: "30258218", Size: "GG"}, {Code: "30258219", Size: "EG"}, {Code: "30258261", Size: "EXG"}}},
		{ID: "epi25", Name: "KIT HIGIENE ABAFADOR RUIDO X4P3E", ReferenceCode: "30230652", Category: "Proteção Auditiva", Type: "Acessório Abafador", Variants: []Variant{{Code: "30230652", Size: "Único"}}},
		{ID: "epi26", Name: "CAMISETA MANOBRA", ReferenceCode: "REF-CM-MNB", Category: "Vestimenta", Type: "Uniforme", Variants: []Variant{{Code: "30290976", Size: "P"}, {Code: "30290977", Size: "M"}, {Code: "30290975", Size: "G"}, {Code: "30290974", Size: "GG"}, {Code: "30290973", Size: "EG"}, {Code: "30290972", Size: "EXG"}}},
		{ID: "epi27", Name: "CALÇA MANOBRA", ReferenceCode: "REF-CLC-MNB", Category: "Vestimenta", Type: "Uniforme", Variants: []Variant{{Code: "30290982", Size: "P"}, {Code: "30290985", Size: "M"}, {Code: "30290981", Size: "G"}, {Code: "30290980", Size: "GG"}, {Code: "30290979", Size: "EXG"}}},
		{ID: "epi28", Name: "OCULOS DE SEGURANÇA", ReferenceCode: "REF-OCL", Category: "Proteção Ocular", Type: "Óculos", Variants: []Variant{{Code: "30241470", Size: "Transparente"}, {Code: "30069364", Size: "Escuro"}, {Code: "30240856", Size: "Sobrepor"}}},
		{ID: "epi29", Name: "CAMISETA OPERACIONAL", ReferenceCode: "REF-CM-OP", Category: "Vestimenta", Type: "Uniforme", Variants: []Variant{{Code: "30231200", Size: "PP"}, {Code: "30274657", Size: "P"}, {Code: "30274675", Size: "M"}, {Code: "30274674", Size: "G"}, {Code: "30230285", Size: "GG"}, {Code: "30230286", Size: "EG"}, {Code: "30230287", Size: "EXG"}}},
		{ID: "epi30", Name: "CAMISA P/ ELETRICISTA NR10", ReferenceCode: "REF-CMS-NR10", Category: "Vestimenta", Type: "Uniforme Eletricista NR10", Variants: []Variant{{Code: "30230779", Size: "50"}, {Code: "30230780", Size: "52"}, {Code: "30230771", Size: "56"}, {Code: "30230782", Size: "58"}, {Code: "30230783", Size: "60"}}},
		{ID: "epi31", Name: "CALCA ELETRO PROTETORA NR10", ReferenceCode: "REF-CLC-NR10", Category: "Vestimenta", Type: "Uniforme Eletricista NR10", Variants: []Variant{{Code: "30228590", Size: "46"}, {Code: "30228591", Size: "48"}, {Code: "30228592", Size: "50"}, {Code: "30228593", Size: "52"}, {Code: "30228594", Size: "54"}}},
		{ID: "epi32", Name: "CAMISA ADM MASCULINA", ReferenceCode: "REF-CMS-ADM", Category: "Vestimenta", Type: "Uniforme", Variants: []Variant{{Code: "30274653", Size: "P"}, {Code: "30274654", Size: "M"}, {Code: "30274655", Size: "G"}, {Code: "30274659", Size: "GG"}, {Code: "30231313", Size: "EG"}, {Code: "30231314", Size: "EXG"}}},
		{ID: "epi33", Name: "CALÇA JEANS FEMININA", ReferenceCode: "REF-CLC-JNS-F", Category: "Vestimenta", Type: "Uniforme", Variants: []Variant{{Code: "30290948", Size: "36"}, {Code: "30271798", Size: "38"}, {Code: "30290947", Size: "40"}, {Code: "30290946", Size: "42"}, {Code: "30271654", Size: "44"}, {Code: "30271656", Size: "46"}, {Code: "30271655", Size: "48"}, {Code: "30257699", Size: "52"}}},
		{ID: "epi34", Name: "JAQUETA OPERACIONAL CAQUI", ReferenceCode: "REF-JQ-OP", Category: "Vestimenta", Type: "Uniforme", Variants: []Variant{{Code: "30257732", Size: "P"}, {Code: "30257731", Size: "M"}, {Code: "30257730", Size: "G"}, {Code: "30257698", Size: "GG"}, {Code: "30257699", Size: "EG"}, {Code: "30258262", Size: "EXG"}}},
		{ID: "epi35", Name: "CALCA ADM MASCULINA JEANS AZ", ReferenceCode: "REF-CLC-JNS-M", Category: "Vestimenta", Type: "Uniforme", Variants: []Variant{{Code: "30271647", Size: "40"}, {Code: "30277733", Size: "42"}, {Code: "30271652", Size: "44"}, {Code: "30271650", Size: "48"}, {Code: "30290879", Size: "50"}, {Code: "30271651", Size: "52"}, {Code: "30231300", Size: "EXG"}}},
		{ID: "epi36", Name: "BOTINA IND/CAMP/OP COU PT COMP", ReferenceCode: "REF-BTD-OP", Category: "Calçados", Type: "Botina", Variants: []Variant{{Code: "30297616", Size: "34"}, {Code: "30297618", Size: "35"}, {Code: "30297619", Size: "36"}, {Code: "30297608", Size: "37"}, {Code: "30297623", Size: "38"}, {Code: "30297626", Size: "39"}, {Code: "30297627", Size: "40"}, {Code: "30297630", Size: "41"}, {Code: "30297640", Size: "42"}, {Code: "30297642", Size: "43"}, {Code: "30297643", Size: "44"}, {Code: "30297650", Size: "45"}, {Code: "30297644", Size: "46"}}},
	}
}
