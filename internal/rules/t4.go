package rules

// Builtin rule table for the CRA T4 specification (version 2026V4).
// The CRA schema rejects optional fields that are present with a
// zero/empty value, so every field listed as optional here carries the
// removal behaviour of its category.

// Optional T4Slip amount fields, removable at exactly zero.
var t4SlipAmounts = []string{
	"empt_incamt",       // Box 14 — Employment income
	"cpp_cntrb_amt",     // Box 16 — CPP contributions
	"cppe_cntrb_amt",    // Box 16A — CPP2/enhanced contributions
	"qpp_cntrb_amt",     // Box 17 — QPP contributions
	"qppe_cntrb_amt",    // Box 17A — QPP2/enhanced contributions
	"empe_eip_amt",      // Box 18 — EI premiums
	"rpp_cntrb_amt",     // Box 20 — RPP contributions
	"itx_ddct_amt",      // Box 22 — Income tax deducted
	"unn_dues_amt",      // Box 44 — Union dues
	"chrty_dons_amt",    // Box 46 — Charitable donations
	"padj_amt",          // Box 52 — Pension adjustment
	"prov_pip_amt",      // Box 55 — PPIP premiums (QC only)
	"prov_insu_ern_amt", // Box 56 — PPIP insurable earnings (QC only)
}

// Optional T4Summary totals, removable at exactly zero.
var t4SummaryAmounts = []string{
	"tot_empt_incamt",
	"tot_empe_cpp_amt",
	"tot_empe_cppe_amt",
	"tot_empe_eip_amt",
	"tot_rpp_cntrb_amt",
	"tot_itx_ddct_amt",
	"tot_padj_amt",
	"tot_empr_cpp_amt",
	"tot_empr_cppe_amt",
	"tot_empr_eip_amt",
}

// Optional amounts inside <OTH_INFO> blocks, removable at exactly zero.
var t4OthInfoAmounts = []string{
	"hm_brd_lodg_amt",                // Code 30
	"spcl_wrk_site_amt",              // Code 31
	"prscb_zn_trvl_amt",              // Code 32
	"med_trvl_amt",                   // Code 33
	"prsnl_vhcl_amt",                 // Code 34
	"low_int_loan_amt",               // Code 36
	"empe_hm_loan_amt",               // Code 37
	"sob_a00_feb_amt",                // Code 38
	"sod_d_a00_feb_amt",              // Code 39
	"oth_tx_ben_amt",                 // Code 40
	"sod_d1_a00_feb_amt",             // Code 41
	"empt_cmsn_amt",                  // Code 42
	"cfppa_amt",                      // Code 43
	"dfr_sob_amt",                    // Code 53
	"elg_rtir_amt",                   // Code 66
	"nelg_rtir_amt",                  // Code 67
	"indn_nelg_rtir_amt",             // Code 69
	"indn_empe_amt",                  // Code 71
	"oc_incamt",                      // Code 72
	"cmpn_rpay_empr_amt",             // Code 77
	"plcmt_emp_agcy_amt",             // Code 81
	"drvr_taxis_oth_amt",             // Code 82
	"brbr_hrdrssr_amt",               // Code 83
	"pub_trnst_pass_amt",             // Code 84
	"epaid_hlth_pln_amt",             // Code 85
	"stok_opt_csh_out_eamt",          // Code 86
	"vlntr_emergencyworker_xmpt_amt", // Code 87
	"indn_txmpt_sei_amt",             // Code 88
	"sob_after_jun2024_amt",          // Code 90
	"sod_d_after_jun2024_amt",        // Code 91
	"sod_d1_after_jun2024_amt",       // Code 92
	"indn_xmpt_rpp_amt",              // Code 94
	"indn_xmpt_unn_amt",              // Code 95
}

// Fields the CRA schema always requires. Listing them keeps the table
// explicit: the classifier would keep unknown fields anyway, but a
// required entry documents that a zero value here is legitimate.
var t4Required = []string{
	"sin",             // employee SIN
	"bn",              // business number
	"cpp_qpp_xmpt_cd", // CPP/QPP exemption code
	"ei_xmpt_cd",      // EI exemption code
	"rpt_tcd",         // report type code
	"empt_prov_cd",    // province of employment
	"ei_insu_ern_amt", // Box 24 — EI insurable earnings
	"cpp_qpp_ern_amt", // Box 26 — CPP/QPP pensionable earnings
	"tx_yr",           // tax year
	"slp_cnt",         // slip count
}

// T4 returns the builtin table for the 2026 T4 specification.
func T4() *Table {
	rs := make([]Rule, 0, 80)
	for _, name := range t4Required {
		rs = append(rs, Rule{Name: name, Category: Required})
	}
	for _, name := range t4SlipAmounts {
		rs = append(rs, Rule{Name: name, Category: OptionalAmount})
	}
	for _, name := range t4SummaryAmounts {
		rs = append(rs, Rule{Name: name, Category: OptionalAmount})
	}
	for _, name := range t4OthInfoAmounts {
		rs = append(rs, Rule{Name: name, Category: OptionalAmount})
	}
	rs = append(rs,
		// Employment code: "00" is not a valid value, real codes are 11-17.
		Rule{Name: "empt_cd", Category: OptionalCode, Sentinel: "00", ValidMin: 11, ValidMax: 17},
		// Provincial PIP exemption: 0 means "not set".
		Rule{Name: "prov_pip_xmpt_cd", Category: OptionalCode, Sentinel: "0", ValidMin: 1, ValidMax: 1},
		// All-zero identifiers mean "no value" in most payroll exports.
		Rule{Name: "rpp_dpsp_rgst_nbr", Category: OptionalIdentifier},
		Rule{Name: "cntc_extn_nbr", Category: OptionalIdentifier},
		Rule{Name: "pprtr_2_sin", Category: OptionalIdentifier},
	)

	t, err := NewTable(2026, rs, []string{"OTH_INFO"})
	if err != nil {
		// The builtin list is static; a duplicate is a programming error.
		panic(err)
	}
	return t
}
