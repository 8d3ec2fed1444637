package tokens

// controlEntries are the canonical (petcat style) control-character
// mnemonics. They are matched in every lexer state.
var controlEntries = []Entry{
	{"{clr}", 147},
	{"{home}", 19},
	{"{up}", 145},
	{"{down}", 17},
	{"{left}", 157},
	{"{rght}", 29},
	{"{$a0}", 160},
	{"{inst}", 148},
	{"{rvon}", 18},
	{"{rvof}", 146},
	{"{blk}", 144},
	{"{wht}", 5},
	{"{red}", 28},
	{"{cyn}", 159},
	{"{pur}", 156},
	{"{grn}", 30},
	{"{blu}", 31},
	{"{yel}", 158},
	{"{orng}", 129},
	{"{brn}", 149},
	{"{lred}", 150},
	{"{gry1}", 151},
	{"{gry2}", 152},
	{"{lgrn}", 153},
	{"{lblu}", 154},
	{"{gry3}", 155},
	{"{f1}", 133},
	{"{f2}", 134},
	{"{f3}", 135},
	{"{f4}", 136},
	{"{f5}", 137},
	{"{f6}", 138},
	{"{f7}", 139},
	{"{f8}", 140},
}

// Controls is the canonical control mnemonic table.
var Controls = NewTable(controlEntries)

// AhoyControls translates the two-letter Ahoy! mnemonics (uppercased,
// braces included) into canonical mnemonics.
var AhoyControls = map[string]string{
	"{SC}": "{clr}",
	"{HM}": "{home}",
	"{CU}": "{up}",
	"{CD}": "{down}",
	"{CL}": "{left}",
	"{CR}": "{rght}",
	"{SS}": "{$a0}",
	"{IN}": "{inst}",
	"{RV}": "{rvon}",
	"{RO}": "{rvof}",
	"{BK}": "{blk}",
	"{WH}": "{wht}",
	"{RD}": "{red}",
	"{CY}": "{cyn}",
	"{PU}": "{pur}",
	"{GN}": "{grn}",
	"{BL}": "{blu}",
	"{YL}": "{yel}",
	"{OR}": "{orng}",
	"{BR}": "{brn}",
	"{LR}": "{lred}",
	"{G1}": "{gry1}",
	"{G2}": "{gry2}",
	"{LG}": "{lgrn}",
	"{LB}": "{lblu}",
	"{G3}": "{gry3}",
	"{F1}": "{f1}",
	"{F2}": "{f2}",
	"{F3}": "{f3}",
	"{F4}": "{f4}",
	"{F5}": "{f5}",
	"{F6}": "{f6}",
	"{F7}": "{f7}",
	"{F8}": "{f8}",
}
