package transcript

// Test fixtures for the TTR-201 transcript (ENST00000237014): the
// feature-masked genomic span of the TTR gene, the expanded lookup
// record, and the expected protein products of the V50M region
// variants.
const (
	ttrGenomeSeq = "ACAGAAGTCCACTCATTCTTGGCAGGATGGCTTCTCATCGTCTGCTCCTCCTCTGCCTTGCTGGACTGGTATTTGTGTCTGAGGCTGGCCCTACGgtgagtgtttctgtgacatcccattcctacatttaagattcacgctaaatgaagtagaagtgactccttccagctttgccaaccagcttttattactagggcaagggtacccagcatctatttttaatataattaattcaaacttcaaaaagaatgaagttccactgagcttactgagctgggacttgaactctgagcattctacctcattgctttggtgcattaggtttgtaatatctggtacctctgtttcctcagatagatgatagaaataaagatatgatattaaggaagctgttaatactgaattttcagaaaagtatccctccataaaatgtatttgggggacaaactgcaggagattatattctggccctatagttattcaaaacgtatttattgattaatctttaaaaggcttagtgaacaatattctagtcagatatctaattcttaaatcctctagaagaattaactaatactataaaatgggtctggatgtagttctgacattattttataacaactggtaagagggagtgactatagcaacaactaaaatgatctcaggaaaacctgtttggccctatgtatggtacattacatcttttcagtaattccactcaaatggagacttttaacaaagcaactgttctcaggggacctattttctcccttaaaattcattatacacatccctggttgatagcagtgtgtctggaggcagaaaccattcttgctttggaaacaattacgtctgtgttatactgagtagggaagctcattaattgtcgacacttacgttcctgataatgggatcagtgtgtaattcttgtttcgctccagatttctaataccacaaagaataaatcctttcactctgatcaattttgttaacttctcacgtgtcttctctacacccagGGCACCGGTGAATCCAAGTGTCCTCTGATGGTCAAAGTTCTAGATGCTGTCCGAGGCAGTCCTGCCATCAATGTGGCCGTGCATGTGTTCAGAAAGGCTGCTGATGACACCTGGGAGCCATTTGCCTCTGGgtaagttgccaaagaaccctcccacaggacttggttttatcttcccgtttgcccctcacttggtagagagaggctcacatcatctgctaaagaatttacaagtagattgaaaaacgtaggcagaggtcaagtatgccctctgaaggatgccctctttttgttttgcttagctaggaagtgaccaggaacctgagcatcatttaggggcagacagtagagaaaagaaggaatcagaactcctctcctctagctgtggtttgcaacccttttgggtcacagaacactttatgtaggtgatgaaaagtaaacattctatgcccagaaaaaatgcacagatacacacacatacaaaatcatatatgtgattttaggagtttcacagattccctggtgtccctgggtaacaccaaagctaagtgtccttgtcttagaattttaggaaaaggtataatgtgtattaacccattaacaaaaggaaaggaattcagaaatattattaaccaggcatctgtctgtagttaatatggatcacccaaaacccaaggcttttgcctaatgaacactttggggcacctactgtgtgcaaggctgggggctgtcaagctcagttaaaaaaaaaaagatagaagagatggatccatgaggcaaagtacagccccaggctaatcccacgatcacccgacttcatgtccaagagtggcttctcaccttcattagccagttcacaattttcatggagtttttctacctgcactagcaaaaacttcaaggaaaatacatattaataaatctaagcaaagtgaccagaagacagagcaatcaggagaccctttgcatccagcagaagaggaactgctaagtatttacatctccacagagaagaatttctgttgggttttaattgaaccccaagaaccacatgattcttcaaccattattgggaagatcattttcttaggtctggttttaactggctttttatttgggaattcatttatgtttatataaaatgccaagcataacatgaaaagtggttacaggactattctaagggagagacagaatggacaccaaaaatattccaatgttcttgtgaatcttttccttgcaccaggacaaaaaaaaaaagaagtgaaaagaagaaaggaggaggggcataatcagagtcagtaaagacaactgctatttttatctatcgtagctgttgcagtcaaatgggaagcaatttccaacattcaactatggagctggtacttacatggaaatagaagttgcctagtgtttgttgctggcaaagagttatcagagaggttaaatatataaaagggaaaagagtcagatacaggttcttcttcctactttaggttttccactgtgtgtgcaaatgatactccctggtggtgtgcagatgcctcaaagctatcctcacaccacaagggagaggagcgagatcctgctgtcctggagaagtgcagagttagaacagctgtggccacttgcatccaatcatcaatcttgaatcacagggactctttcttaagtaaacattatacctggccgggcacggtggctcacgcctgtaatcccagcactttgggatgccaaagtgggcatatcatctgaggtcaggagttcaagaccagcctggccaacatggcaaaactccgtctttatgaaaaatacaaaaattagccaggcatggtggcaggcgcctgtaatcccagctaattgggaggctgaggctggagaatcccttgaatctaggaggcagaggttgcagtgagctgagatcgtgccattgcactccagcctgggtgacaagagtaaaactctgtctcaaaaaaaaaaaattatacctacattctcttcttatcagagaaaaaaatctacagtgagcttttcaaaaagtttttacaaactttttgccatttaatttcagttaggagttttccctacttctgacttagttgaggggaaatgttcataacatgtttataacatgtttatgtgtgttagttggtgggggtgtattactttgccatgccatttgtttcctccatgcgtaacttaatccagactttcacaccttatagGAAAACCAGTGAGTCTGGAGAGCTGCATGGGCTCACAACTGAGGAGGAATTTGTAGAAGGGATATACAAAGTGGAAATAGACACCAAATCTTACTGGAAGGCACTTGGCATCTCCCCATTCCATGAGCATGCAGAGgtgagtatacagaccttcgagggttgttttggttttggtttttgcttttggcattccaggaaatgcacagttttactcagtgtaccacagaaatgtcctaaggaaggtgatgaatgaccaaaggttccctttcctattatacaagaaaaaattcacaacactctgagaagcaaatttctttttgactttgatgaaaatccacttagtaacatgacttgaacttacatgaaactactcatagtctattcattccactttatatgaatattgatgtatctgctgttgaaataatagtttatgaggcagccctccagaccccacgtagagtgtatgtaacaagagatgcaccattttatttctcgaaaacccgtaacattcttcattccaaaacacatctggcttctcggaggtctggacaagtgattcttggcaacacatacctatagagacaataaaatcaaagtaataatggcaacacaatagataacatttaccaagcatacaccatgtggcagacacaattataagtgttttccatatttaacctacttaatcctcaggaataagccactgaggtcagtcctattattatccccatcttatagatgaagaaaatgaggcaccaggaagtcaaataacttgtcaaaggtcacaagactaggaaatacacaagtagaaatgtttacaattaaggcccaggctgggtttgccctcagttctgctatgcctcgcattatgccccaggaaactttttcccttgtgaaagccaagcttaaaaaaagaaaagccacatttgtaacgtgctctgttcccctgcctatggtgaggatcttcaaacagttatacatggacccagtccccctgccttctccttaatttcttaagtcatttgaaacagatggctgtcatggaaatagaatccagacatgttggtcagagttaaagatcaactaattccatcaaaaatagctcggcatgaaagggaactattctctggcttagtcatggatgagactttcaattgctataaagtggttcctttattagacaatgttaccagggaaacaacaggggtttgtttgacttctggggcccacaagtcaacaagagagccccatctaccaaggagcatgtccctgactacccctcagccagcagcaagacatggaccccagtcagggcaggagcagggtttcggcggcgcccagcacaagacattgcccctagagtctcagcccctaccctcgagtaatagatctgcctacctgagactgttgtttgcccaagagctgggtctcagcctgatgggaaccatataaaaaggttcactgacatactgcccacatgttgttctctttcattagatcttagcttccttgtctgctcttcattcttgcagtattcattcaacaaacattaaaaaaaaaaaaaagcattctatgtgtggaacactctgctagatgctgtggatttagaaatgaaaatacatcccgacccttggaatggaagggaaaggactgaagtaagacagattaagcaggaccgtcagcccagcttgaagcccagataaatacggagaacaagagagagcgagtagtgagagatgagtcccaatgcctcactttggtgacgggtgcgtggtgggcttcatgcagcttcttctgataaatgcctccttcagaactggtcaactctaccttggccagtgacccaggtggtcatagtagatttaccaagggaaaatggaaacttttattaggagctcttaggcctcttcacttcatggatttttttttcctttttttttgagatggagttttgccctgtcacccaggctggaatgcagtggtgcaatctcagctcactgcaacctccgcctcccaggttcaagcaattctcctgcctcagcctcccgagtagctgggactacaggtgtgcgccaccacaccaggctaatttttgtattttttgtaaagacaggttttcaccacgttggccaggctggtctgaactccagacctcaggtgattcacctgtctcagcctcccaaagtgctgggattacaggtgtgagccaccgtgcccggctacttcatggatttttgattacagattatgcctcttacaatttttaagaagaatcaagtgggctgaaggtcaatgtcaccataagacaaaagacatttttattagttgattctagggaattggccttaaggggagccctttcttcctaagagattcttaggtgattctcacttcctcttgccccagtattatttttgtttttggtatggctcactcagatccttttttcctcctatccctaagtaatccgggtttctttttcccatatttagaacaaaatgtatttatgcagagtgtgtccaaacctcaacccaaggcctgtatacaaaataaatcaaattaaacacatctttactgtcttctacctctttcctgacctcaatatatcccaacttgcctcactctgagaaccaaggctgtcccagcacctgagtcgcagatattctactgatttgacagaactgtgtgactatctggaacagcattttgatccacaatttgcccagttacaaagcttaaatgagctctagtgcatgcatatatatttcaaaattccaccatgatcttccacactctgtattgtaaatagagccctgtaatgcttttacttcgtatttcattgcttgttatacataaaaatatacttttcttcttcatgttagaaaatgcaaagaataggagggtgggggaatctctgggcttggagacaggagacttgccttcctactatggttccatcagaatgtagactgggacaatacaataattcaagtctggtttgctcatctgtaaattgggaagaatgtttccagctccagaatgctaaatctctaagtctgtggttggcagccactattgcagcagctcttcaatgactcaatgcagttttgcattctccctaccttttttttctaaaaccaataaaatagatacagcctttaggctttctgggatttcccttagtcaagctagggtcatcctgactttcggcgtgaatttgcaaaacaagacctgactctgtactcctgctctaaggactgtgcatggttccaaaggcttagcttgccagcatatttgagctttttccttctgttcaaactgttccaaaatataaaagaataaaattaattaagttggcactggacttccggtggtcagtcatgtgtgtcatctgtcacgtttttcgggctctggtggaaatggatctgtctgtcttctctcatagGTGGTATTCACAGCCAACGACTCCGGCCCCCGCCGCTACACCATTGCCGCCCTGCTGAGCCCCTACTCCTATTCCACCACGGCTGTCGTCACCAATCCCAAGGAATGAGGGACTTCTCCTCCAGTGGACCTGAAGGACGAGGGATGGGATTTCATGTAACCAAGAGTATTCCATTTTTACTAAAGCAGTGTTTTCACCTCATATGCTATGTTAGAAGTCCAGGCAGAGACAATAAAACATTCCTGTGAAAGGCA"

	ttr201JSON = `{"end":31598821,"object_type":"Transcript","is_canonical":1,"length":616,"db_type":"core","id":"ENST00000237014","Translation":{"version":4,"species":"homo_sapiens","start":31591903,"length":147,"id":"ENSP00000237014","db_type":"core","Parent":"ENST00000237014","end":31598675,"object_type":"Translation"},"species":"homo_sapiens","display_name":"TTR-201","start":31591877,"version":8,"seq_region_name":"18","assembly_name":"GRCh38","logic_name":"ensembl_havana_transcript_homo_sapiens","Exon":[{"species":"homo_sapiens","start":31591877,"version":2,"assembly_name":"GRCh38","seq_region_name":"18","end":31591971,"object_type":"Exon","db_type":"core","id":"ENSE00001836564","strand":1},{"start":31592896,"species":"homo_sapiens","seq_region_name":"18","assembly_name":"GRCh38","version":1,"end":31593026,"object_type":"Exon","id":"ENSE00003556666","db_type":"core","strand":1},{"id":"ENSE00000796939","db_type":"core","strand":1,"end":31595255,"object_type":"Exon","version":1,"seq_region_name":"18","assembly_name":"GRCh38","species":"homo_sapiens","start":31595120},{"end":31598821,"object_type":"Exon","db_type":"core","id":"ENSE00001827041","strand":1,"start":31598568,"species":"homo_sapiens","seq_region_name":"18","assembly_name":"GRCh38","version":2}],"strand":1,"Parent":"ENSG00000118271","source":"ensembl_havana","UTR":[{"assembly_name":"GRCh38","seq_region_name":"18","start":31591877,"source":"ensembl_havana","type":"five_prime_utr","species":"homo_sapiens","db_type":"core","id":"ENST00000237014","strand":1,"Parent":"ENST00000237014","end":31591902,"object_type":"five_prime_UTR"},{"type":"three_prime_utr","species":"homo_sapiens","source":"ensembl_havana","start":31598676,"seq_region_name":"18","assembly_name":"GRCh38","object_type":"three_prime_UTR","end":31598821,"strand":1,"Parent":"ENST00000237014","id":"ENST00000237014","db_type":"core"}],"biotype":"protein_coding"}`

	ttrV50MProtein = "MASHRLLLLCLAGLVFVSEAGPTGTGESKCPLMVKVLDAVRGSPAINVAMHVFRKAADDTWEPFASGKTSESGELHGLTTEEEFVEGIYKVEIDTKSYWKALGISPFHEHAEVVFTANDSGPRRYTIAALLSPYSYSTTAVVTNPKE*"

	ttrDelProtein = "MASHRLLLLCLAGLVFVSEAGPTGTGESKCPLMVKVLDAVRGSPAINVACMCSERLLMTPGSHLPLGKPVSLESCMGSQLRRNL*"

	ttrInsProtein = "MASHRLLLLCLAGLVFVSEAGPTGTGESKCPLMVKVLDAVRGSPAINVAGACVQKGC*"
)
