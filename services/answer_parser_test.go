package services

import "testing"

func TestParseRAGAnswerDecisionTable(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		address  string
		wantName string
		wantDesc string
	}{
		{
			name:     "both markers, known facility",
			raw:      "【施設名】東京タワー\n【ガイド】高さ333mの電波塔です。",
			address:  "東京都港区",
			wantName: "東京タワー",
			wantDesc: "高さ333mの電波塔です。",
		},
		{
			name:     "both markers, unknown facility",
			raw:      "【施設名】不明\n【ガイド】この場所の詳しい情報はありません。",
			address:  "東京都中央区銀座",
			wantName: "東京都中央区銀座",
			wantDesc: "この場所の詳しい情報はありません。",
		},
		{
			name:     "guide marker only",
			raw:      "【ガイド】この周辺は歴史ある商業地です。",
			address:  "東京都中央区銀座",
			wantName: "東京都中央区銀座",
			wantDesc: "この周辺は歴史ある商業地です。",
		},
		{
			name:     "no markers",
			raw:      "マーカーのない自由回答です。",
			address:  "東京都中央区銀座",
			wantName: "東京都中央区銀座",
			wantDesc: "マーカーのない自由回答です。",
		},
		{
			name:     "name marker only",
			raw:      "【施設名】歌舞伎座",
			address:  "東京都中央区銀座",
			wantName: "歌舞伎座",
			wantDesc: "【施設名】歌舞伎座",
		},
		{
			name:     "no markers, empty address",
			raw:      "answer without structure",
			address:  "",
			wantName: "Unknown Facility",
			wantDesc: "answer without structure",
		},
		{
			name:     "unknown facility, empty address",
			raw:      "【施設名】不明\n【ガイド】案内文",
			address:  "",
			wantName: "Unknown Facility",
			wantDesc: "案内文",
		},
		{
			name:     "markers reordered",
			raw:      "【ガイド】案内文です。\n【施設名】浜離宮恩賜庭園",
			address:  "東京都中央区",
			wantName: "浜離宮恩賜庭園",
			wantDesc: "案内文です。",
		},
		{
			name:     "surrounding whitespace trimmed",
			raw:      "【施設名】  銀座シックス  \n【ガイド】\n  商業施設です。\n",
			address:  "東京都中央区銀座",
			wantName: "銀座シックス",
			wantDesc: "商業施設です。",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotName, gotDesc := ParseRAGAnswer(tt.raw, tt.address)
			if gotName != tt.wantName {
				t.Errorf("name = %q, want %q", gotName, tt.wantName)
			}
			if gotDesc != tt.wantDesc {
				t.Errorf("description = %q, want %q", gotDesc, tt.wantDesc)
			}
		})
	}
}

func TestParseRAGAnswerIdempotent(t *testing.T) {
	raw := "【施設名】東京タワー\n【ガイド】高さ333mの電波塔です。"

	name1, desc1 := ParseRAGAnswer(raw, "addr")
	name2, desc2 := ParseRAGAnswer(raw, "addr")
	if name1 != name2 || desc1 != desc2 {
		t.Errorf("parse not deterministic: (%q, %q) vs (%q, %q)", name1, desc1, name2, desc2)
	}
}

func TestUnknownFacilityDetection(t *testing.T) {
	unknown := []string{
		"Unknown",
		"UNKNOWN",
		"unknown facility",
		"不明",
		"施設は不明です",
		"特定できません",
		"inconnu",
		"Desconocido",
		"unbekannt",
		"未知",
		"알 수 없음",
		"ไม่ทราบ",
		"Not Identified",
	}
	for _, name := range unknown {
		if !isUnknownFacility(name) {
			t.Errorf("isUnknownFacility(%q) = false, want true", name)
		}
	}

	known := []string{
		"東京タワー",
		"Ginza Six",
		"Tour Eiffel",
		"歌舞伎座",
	}
	for _, name := range known {
		if isUnknownFacility(name) {
			t.Errorf("isUnknownFacility(%q) = true, want false", name)
		}
	}
}
